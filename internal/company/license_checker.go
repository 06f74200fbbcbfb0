package company

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const licenseCacheTTL = 30 * time.Second

// LicenseChecker answers "is this tenant allowed to use the platform" for the
// transport-level guard. Lookups are deduplicated with singleflight and the
// result is cached briefly in redis, so a suspended tenant is cut off within
// the cache TTL.
type LicenseChecker struct {
	repo  Repository
	rdb   *redis.Client
	group singleflight.Group
}

func NewLicenseChecker(repo Repository, rdb *redis.Client) *LicenseChecker {
	return &LicenseChecker{repo: repo, rdb: rdb}
}

func (c *LicenseChecker) IsActive(ctx context.Context, companyID string) (bool, error) {
	cacheKey := "license:" + companyID

	if c.rdb != nil {
		if val, err := c.rdb.Get(ctx, cacheKey).Result(); err == nil {
			return val == LicenseActive, nil
		}
	}

	v, err, _ := c.group.Do(companyID, func() (any, error) {
		status, err := c.repo.GetLicenseStatus(ctx, companyID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown tenants are treated as suspended, not as an error
			return LicenseSuspended, nil
		}
		if err != nil {
			return "", err
		}

		if c.rdb != nil {
			_ = c.rdb.Set(ctx, cacheKey, status, licenseCacheTTL).Err()
		}
		return status, nil
	})
	if err != nil {
		return false, err
	}

	return v.(string) == LicenseActive, nil
}

// Invalidate drops the cached status, used right after an admin flips the
// kill-switch so the change takes effect immediately.
func (c *LicenseChecker) Invalidate(ctx context.Context, companyID string) {
	if c.rdb != nil {
		_ = c.rdb.Del(ctx, "license:"+companyID).Err()
	}
}
