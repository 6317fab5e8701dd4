// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/course-cms/models"
)

const (
	FieldEmail        = "email"
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldNickname     = "nickname"
	FieldSex          = "sex"
	FieldRole         = "role"
	FieldAvatar       = "avatar"
	FieldName         = "name"
	FieldRank         = "rank"
	FieldCategoryID   = "categoryId"
	FieldUserID       = "userId"
	FieldImage        = "image"
	FieldCourseID     = "courseId"
	FieldTitle        = "title"
	FieldVideo        = "video"
	FieldConfirmation = "passwordConfirmation"
)

// EntityValidator validates the domain entities before they are stored.
type EntityValidator struct{}

// NewEntityValidator returns a Validator for users, categories, courses,
// chapters and articles.
func NewEntityValidator() Validator {
	return &EntityValidator{}
}

// Validate checks obj against its field constraints. When fields are given,
// only those fields are checked.
func (v *EntityValidator) Validate(_ context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return ValidateUser(value, fields...)
	case *models.User:
		return ValidateUser(*value, fields...)
	case models.Category:
		return ValidateCategory(value)
	case *models.Category:
		return ValidateCategory(*value)
	case models.Course:
		return ValidateCourse(value)
	case *models.Course:
		return ValidateCourse(*value)
	case models.Chapter:
		return ValidateChapter(value)
	case *models.Chapter:
		return ValidateChapter(*value)
	case models.Article:
		return ValidateArticle(value)
	case *models.Article:
		return ValidateArticle(*value)
	default:
		return ErrUnsupportedType
	}
}

// ValidateUser checks the persisted fields of a user. The password is checked
// separately by ValidatePassword because only its hash is stored.
func ValidateUser(u models.User, fields ...string) error {
	c := newCollector(fields)
	c.required(FieldEmail, u.Email, 1, 255)
	c.email(FieldEmail, u.Email)
	c.required(FieldUsername, u.Username, 2, 45)
	c.required(FieldNickname, u.Nickname, 2, 45)
	c.oneOf(FieldSex, int(u.Sex), "0 1 2")
	c.oneOf(FieldRole, int(u.Role), "0 100")
	c.optionalURL(FieldAvatar, u.Avatar)
	return c.violations.orNil()
}

// ValidatePassword checks a plaintext password before it is hashed.
func ValidatePassword(password string) error {
	c := newCollector(nil)
	c.required(FieldPassword, password, 6, 45)
	return c.violations.orNil()
}

// ValidateCategory checks the fields of a category.
func ValidateCategory(cat models.Category) error {
	c := newCollector(nil)
	c.required(FieldName, cat.Name, 2, 45)
	c.positive(FieldRank, cat.Rank)
	return c.violations.orNil()
}

// ValidateCourse checks the fields of a course. Existence of the referenced
// category and author is not checked here.
func ValidateCourse(course models.Course) error {
	c := newCollector(nil)
	c.positiveID(FieldCategoryID, course.CategoryID)
	c.positiveID(FieldUserID, course.UserID)
	c.required(FieldName, course.Name, 2, 45)
	c.optionalURL(FieldImage, course.Image)
	return c.violations.orNil()
}

// ValidateChapter checks the fields of a chapter.
func ValidateChapter(chapter models.Chapter) error {
	c := newCollector(nil)
	c.positiveID(FieldCourseID, chapter.CourseID)
	c.required(FieldTitle, chapter.Title, 2, 45)
	c.optionalURL(FieldVideo, chapter.Video)
	c.positive(FieldRank, chapter.Rank)
	return c.violations.orNil()
}

// ValidateArticle checks the fields of an article.
func ValidateArticle(article models.Article) error {
	c := newCollector(nil)
	c.required(FieldTitle, article.Title, 2, 45)
	return c.violations.orNil()
}
