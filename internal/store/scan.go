package store

import (
	"context"
)

// ScanLimits bounds a prefix scan.
type ScanLimits struct {
	PageSize int
	MaxPages int
}

// DefaultScanLimits is 100 keys per page, at most 10 pages.
var DefaultScanLimits = ScanLimits{PageSize: 100, MaxPages: 10}

func (l ScanLimits) normalized() ScanLimits {
	if l.PageSize <= 0 {
		l.PageSize = DefaultScanLimits.PageSize
	}
	if l.MaxPages <= 0 {
		l.MaxPages = DefaultScanLimits.MaxPages
	}
	return l
}

// scan walks keys under prefix page by page and calls visit for each one
// until visit returns false, the listing ends, or MaxPages is reached.
// complete reports whether the whole prefix was walked.
func scan(ctx context.Context, kv KeyValueStore, prefix string, limits ScanLimits, visit func(key string) bool) (complete bool, err error) {
	limits = limits.normalized()

	cursor := ""
	for page := 0; page < limits.MaxPages; page++ {
		if err = ctx.Err(); err != nil {
			return false, err
		}

		res, listErr := kv.List(ctx, ListOptions{Prefix: prefix, Cursor: cursor, Limit: limits.PageSize})
		if listErr != nil {
			return false, listErr
		}

		for _, key := range res.Keys {
			if !visit(key) {
				return false, nil
			}
		}

		if res.Complete {
			return true, nil
		}
		cursor = res.Cursor
	}

	return false, nil
}
