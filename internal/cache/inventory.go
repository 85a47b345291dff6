package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	BlogKeyPrefix     = "blog:%d"
	CategoriesListKey = "categories:all"
)

const (
	BlogTTL       = 30 * time.Minute
	CategoriesTTL = 10 * time.Minute
)

func BlogKey(blogID uint) string {
	return fmt.Sprintf(BlogKeyPrefix, blogID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateBlog(ctx context.Context, blogID uint) {
	Invalidate(ctx, BlogKey(blogID))
}

func InvalidateCategories(ctx context.Context) {
	Invalidate(ctx, CategoriesListKey)
}
