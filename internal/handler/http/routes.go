// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withTimeout)

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/", h.home)
		r.Get("/categories", h.allCategories)
		r.Get("/courses", h.categoryCourses)
		r.Get("/courses/{id}", h.courseDetail)
		r.Get("/chapters/{id}", h.chapterDetail)
		r.Get("/articles", h.listArticles)
		r.Get("/articles/{id}", h.getArticle)
		r.Get("/settings", h.getSetting)
		r.Get("/search", h.searchCourses)
		r.Get("/version", h.getServerVersion)

		r.Post("/auth/sign_up", h.signUp)
		r.Post("/auth/sign_in", h.signIn)
		r.Post("/admin/auth/sign_in", h.adminSignIn)
	})

	// routes for any signed-in user
	router.Group(func(r chi.Router) {
		r.Use(h.userAuth)

		r.Get("/users/me", h.me)
		r.Put("/users/info", h.updateProfile)
		r.Put("/users/account", h.updateAccount)

		r.Post("/likes", h.toggleLike)
		r.Get("/likes", h.likedCourses)
	})

	// administrator routes
	router.Group(func(r chi.Router) {
		r.Use(h.adminAuth)

		r.Get("/admin/users", h.listUsers)
		r.Post("/admin/users", h.createUser)
		r.Get("/admin/users/{id}", h.getUser)
		r.Put("/admin/users/{id}", h.updateUser)

		r.Get("/admin/categories", h.listCategories)
		r.Post("/admin/categories", h.createCategory)
		r.Get("/admin/categories/{id}", h.getCategory)
		r.Put("/admin/categories/{id}", h.updateCategory)
		r.Delete("/admin/categories/{id}", h.deleteCategory)

		r.Get("/admin/courses", h.listCourses)
		r.Post("/admin/courses", h.createCourse)
		r.Get("/admin/courses/{id}", h.getCourse)
		r.Put("/admin/courses/{id}", h.updateCourse)
		r.Delete("/admin/courses/{id}", h.deleteCourse)

		r.Get("/admin/chapters", h.listChapters)
		r.Post("/admin/chapters", h.createChapter)
		r.Get("/admin/chapters/{id}", h.getChapter)
		r.Put("/admin/chapters/{id}", h.updateChapter)
		r.Delete("/admin/chapters/{id}", h.deleteChapter)

		r.Get("/admin/articles", h.listArticles)
		r.Post("/admin/articles", h.createArticle)
		r.Get("/admin/articles/{id}", h.getArticle)
		r.Put("/admin/articles/{id}", h.updateArticle)
		r.Delete("/admin/articles/{id}", h.deleteArticle)

		r.Get("/admin/settings", h.getSetting)
		r.Put("/admin/settings", h.updateSetting)

		r.Get("/admin/charts/sex_count", h.sexCount)
		r.Get("/admin/charts/user_count", h.userCount)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
