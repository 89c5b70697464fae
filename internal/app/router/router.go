// Package router assembles the gin route table.
package router

import (
	"github.com/gin-gonic/gin"

	"task_backend/internal/config"
	authhandler "task_backend/internal/feature/auth/transport/handler"
	taskhandler "task_backend/internal/feature/tasks/transport/handler"
	jwtmw "task_backend/internal/platform/jwt"
	"task_backend/internal/web"
)

// NewRouter wires handlers, templates and the per-flow access-control policy.
//
// The guard policy is deliberately explicit: cfg.Tasks.GuardWrites protects
// the create/update/delete flows, cfg.Tasks.GuardList protects the listing.
// Guarded flows redirect unauthenticated browsers to /signin/.
func NewRouter(authH *authhandler.AuthHandler, taskH *taskhandler.TaskHandler,
	auth authhandler.AuthUsecase, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.SetHTMLTemplate(web.Templates())

	// Every HTML request resolves the session cookie, so pages can show the
	// signed-in user even on unguarded flows.
	r.Use(authhandler.SessionAuth(auth, cfg.Session.CookieName))

	// No authentication required
	r.GET("/healthz", Health)
	r.GET("/", taskH.Index)
	r.GET("/signup/", authH.ShowSignup)
	r.POST("/signup/", authH.Signup)
	r.GET("/signin/", authH.ShowLogin)
	r.POST("/signin/", authH.Login)
	r.GET("/logout/", authH.Logout)

	// Task flows, guarded per the configured policy
	listGuard := guard(cfg.Tasks.GuardList)
	writeGuard := guard(cfg.Tasks.GuardWrites)
	r.GET("/tasks/", listGuard, taskH.List)
	r.POST("/tasks/", writeGuard, taskH.Create)
	r.GET("/tasks/:id/update", writeGuard, taskH.ShowUpdate)
	r.POST("/tasks/:id/update", writeGuard, taskH.Update)
	r.GET("/tasks/:id/delete", writeGuard, taskH.ShowDelete)
	r.POST("/tasks/:id/delete", writeGuard, taskH.Delete)

	// JSON API, guarded by bearer tokens
	api := r.Group("/api")
	api.POST("/login", authH.TokenLogin)
	apiAuth := api.Group("/")
	apiAuth.Use(jwtmw.AuthRequired(cfg.JWT.Secret))
	{
		apiAuth.GET("/tasks", taskH.APIList)
		apiAuth.POST("/tasks", taskH.APICreate)
	}

	return r
}

// guard returns the login guard when enabled, or a pass-through otherwise.
func guard(enabled bool) gin.HandlerFunc {
	if enabled {
		return authhandler.LoginRequired()
	}
	return func(c *gin.Context) { c.Next() }
}
