package statistics

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/carlimendez/aulareserva/app/models"
	"github.com/carlimendez/aulareserva/internal/pkg/cache"
	"github.com/carlimendez/aulareserva/internal/pkg/database"
)

const (
	CacheKeyUsers             = "statistics:users:total"
	CacheKeyReservationsTotal = "statistics:reservations:total"
	CacheKeyReservationsDaily = "statistics:reservations:daily:%s" // Format with date YYYY-MM-DD
	CacheKeyNewsActive        = "statistics:news:active"
	CacheExpiration           = 30 * time.Minute
)

// StatisticsData holds the dashboard headline numbers.
type StatisticsData struct {
	TotalUsers        int
	TotalReservations int
	TodayReservations int
	ActiveNews        int
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// ShouldUpdateCache reports whether the cached numbers are stale.
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded refreshes the cached numbers when they are stale.
func UpdateCacheIfNeeded() {
	if ShouldUpdateCache() {
		cacheUpdateMutex.Lock()
		defer cacheUpdateMutex.Unlock()

		if err := UpdateStatisticsCache(); err != nil {
			log.Errorf("[Statistics] cache refresh failed: %v", err)
		} else {
			lastCacheUpdate = time.Now()
		}
	}
}

// ResetCacheUpdateTimer forces the next read to refresh the cache.
func ResetCacheUpdateTimer() {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	lastCacheUpdate = time.Time{}
}

// UpdateStatisticsCache recomputes every headline number and stores it in the
// cache.
func UpdateStatisticsCache() error {
	db := database.GetDB()
	now := time.Now()

	var totalUsers int64
	if err := db.Model(&models.User{}).Count(&totalUsers).Error; err != nil {
		return err
	}

	var totalReservations int64
	if err := db.Model(&models.Reservation{}).Count(&totalReservations).Error; err != nil {
		return err
	}

	var todayReservations int64
	today := now.Format("2006-01-02")
	if err := db.Model(&models.Reservation{}).Where("date = ?", today).Count(&todayReservations).Error; err != nil {
		return err
	}

	var activeNews int64
	if err := db.Model(&models.News{}).Where("expires_at > ?", now).Count(&activeNews).Error; err != nil {
		return err
	}

	if err := cache.Set(CacheKeyUsers, strconv.FormatInt(totalUsers, 10), CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeyReservationsTotal, strconv.FormatInt(totalReservations, 10), CacheExpiration); err != nil {
		return err
	}
	dailyKey := fmt.Sprintf(CacheKeyReservationsDaily, today)
	if err := cache.Set(dailyKey, strconv.FormatInt(todayReservations, 10), CacheExpiration); err != nil {
		return err
	}
	if err := cache.Set(CacheKeyNewsActive, strconv.FormatInt(activeNews, 10), CacheExpiration); err != nil {
		return err
	}

	return nil
}

// cachedInt reads a counter from cache, computing and caching it on a miss.
func cachedInt(key string, compute func() (int64, error)) int {
	val, err := cache.Get(key)
	if err == nil {
		count, perr := strconv.ParseInt(val, 10, 64)
		if perr != nil {
			return 0
		}
		return int(count)
	}

	count, err := compute()
	if err != nil {
		log.Errorf("[Statistics] counting for %s failed: %v", key, err)
		return 0
	}
	if err := cache.Set(key, strconv.FormatInt(count, 10), CacheExpiration); err != nil {
		log.Errorf("[Statistics] caching %s failed: %v", key, err)
	}
	return int(count)
}

// GetStatisticsData returns the dashboard headline numbers, refreshing the
// cache when needed.
func GetStatisticsData() StatisticsData {
	UpdateCacheIfNeeded()

	db := database.GetDB()
	now := time.Now()
	today := now.Format("2006-01-02")

	return StatisticsData{
		TotalUsers: cachedInt(CacheKeyUsers, func() (int64, error) {
			var count int64
			err := db.Model(&models.User{}).Count(&count).Error
			return count, err
		}),
		TotalReservations: cachedInt(CacheKeyReservationsTotal, func() (int64, error) {
			var count int64
			err := db.Model(&models.Reservation{}).Count(&count).Error
			return count, err
		}),
		TodayReservations: cachedInt(fmt.Sprintf(CacheKeyReservationsDaily, today), func() (int64, error) {
			var count int64
			err := db.Model(&models.Reservation{}).Where("date = ?", today).Count(&count).Error
			return count, err
		}),
		ActiveNews: cachedInt(CacheKeyNewsActive, func() (int64, error) {
			var count int64
			err := db.Model(&models.News{}).Where("expires_at > ?", now).Count(&count).Error
			return count, err
		}),
	}
}
