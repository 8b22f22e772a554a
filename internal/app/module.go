package app

import (
	"fmt"

	"github.com/shandysiswandi/goblog/internal/blog"
	"github.com/shandysiswandi/goblog/internal/category"
	"github.com/shandysiswandi/goblog/internal/user"
)

func (a *App) initModules() error {
	if a.config.GetBool("modules.user.enabled") {
		if err := user.New(user.Dependency{
			Context: a.ctx,
			Router:  a.router,
			DB:      a.db,
			ID:      a.uuid,
		}); err != nil {
			return fmt.Errorf("init module user: %w", err)
		}
	}

	if a.config.GetBool("modules.category.enabled") {
		if err := category.New(category.Dependency{
			Context: a.ctx,
			Router:  a.router,
			DB:      a.db,
			ID:      a.snowflake,
		}); err != nil {
			return fmt.Errorf("init module category: %w", err)
		}
	}

	if a.config.GetBool("modules.blog.enabled") {
		stop, err := blog.New(blog.Dependency{
			Config:    a.config,
			Goroutine: a.goroutine,
			Router:    a.router,
			Uploads:   a.uploads,
			DB:        a.db,
			Context:   a.ctx,
			ID:        a.uuid,
		})
		if err != nil {
			return fmt.Errorf("init module blog: %w", err)
		}
		a.addCloser("Blog", stop)
	}

	return nil
}
