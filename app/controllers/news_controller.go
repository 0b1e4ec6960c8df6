package controllers

import (
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/carlimendez/aulareserva/app/models"
	"github.com/carlimendez/aulareserva/internal/pkg/apperr"
	"github.com/carlimendez/aulareserva/internal/pkg/metrics/counter"
	"github.com/carlimendez/aulareserva/internal/pkg/newsfeed"
	"github.com/carlimendez/aulareserva/internal/pkg/usercontext"
)

// NewsController handles news HTTP requests on top of the newsfeed service.
type NewsController struct {
	news *newsfeed.Service
}

// NewNewsController creates a news controller.
func NewNewsController(news *newsfeed.Service) *NewsController {
	return &NewsController{news: news}
}

// HandleCreate stores a new time-limited post. Media is an optional
// multipart file field named newsMedia.
func (nc *NewsController) HandleCreate(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)

	media, err := nc.readMedia(c)
	if err != nil {
		return respondError(c, err)
	}

	duration, _ := strconv.Atoi(c.FormValue("duration"))
	news, err := nc.news.Create(newsfeed.CreateInput{
		Title:        c.FormValue("title"),
		Summary:      c.FormValue("summary"),
		Content:      c.FormValue("content"),
		Duration:     duration,
		DurationUnit: c.FormValue("durationType"),
		AuthorID:     userCtx.UserID,
		Media:        media,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "news created",
		"news":    news,
	})
}

// HandleActive returns the dashboard feed of unexpired posts.
func (nc *NewsController) HandleActive(c *fiber.Ctx) error {
	news, err := nc.news.ListActive()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(news)
}

// HandleAll returns every post regardless of expiry, for the admin view.
func (nc *NewsController) HandleAll(c *fiber.Ctx) error {
	news, err := nc.news.ListAll()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(news)
}

// HandleGet returns a single post for the edit form.
func (nc *NewsController) HandleGet(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	news, err := nc.news.Get(id)
	if err != nil {
		return respondError(c, err)
	}

	// Best effort; the counter is flushed to the database in batches.
	if err := counter.AddNewsView(news.ID); err != nil {
		log.Errorf("[News] view counter for %d failed: %v", news.ID, err)
	}

	return c.JSON(news)
}

// HandleEdit replaces the stored fields of a post. The expiry is recomputed
// from the current time only when both duration and durationType are sent.
func (nc *NewsController) HandleEdit(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	in := newsfeed.EditInput{
		Title:        c.FormValue("title"),
		Summary:      c.FormValue("summary"),
		Content:      c.FormValue("content"),
		DurationUnit: c.FormValue("durationType"),
	}
	if raw := c.FormValue("duration"); raw != "" {
		in.HasDuration = true
		in.Duration, _ = strconv.Atoi(raw)
	}

	media, err := nc.readMedia(c)
	if err != nil {
		return respondError(c, err)
	}
	if media.Kind != "" && media.Kind != models.MEDIA_NONE {
		in.Media = &media
	}

	news, err := nc.news.Edit(id, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(news)
}

// HandleDelete removes a post.
func (nc *NewsController) HandleDelete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := nc.news.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "news deleted"})
}

// HandleSweepExpired purges expired posts on demand; the sweeper runs the
// same operation hourly.
func (nc *NewsController) HandleSweepExpired(c *fiber.Ctx) error {
	deleted, err := nc.news.SweepExpired(time.Now())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "expired news purged",
		"deleted": deleted,
	})
}

func (nc *NewsController) readMedia(c *fiber.Ctx) (newsfeed.Media, error) {
	fileHeader, err := c.FormFile("newsMedia")
	if err != nil {
		return newsfeed.NoMedia(), nil
	}

	file, err := fileHeader.Open()
	if err != nil {
		return newsfeed.Media{}, apperr.Wrap(apperr.KindValidation, "could not read uploaded file", err)
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		return newsfeed.Media{}, apperr.Wrap(apperr.KindValidation, "could not read uploaded file", err)
	}

	return newsfeed.BuildMedia(payload, fileHeader.Header.Get("Content-Type"))
}
