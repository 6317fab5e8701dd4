// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/course-cms/internal/listing"
	"github.com/MKhiriev/course-cms/models"
)

const (
	usersTable      = "users"
	categoriesTable = "categories"
	coursesTable    = "courses"
	chaptersTable   = "chapters"
	articlesTable   = "articles"
	likesTable      = "likes"
	settingsTable   = "settings"
)

var (
	userColumns = []string{
		"id", "email", "username", "password", "nickname", "sex",
		"company", "introduce", "avatar", "role", "created_at", "updated_at",
	}
	categoryColumns = []string{"id", "name", "rank", "created_at", "updated_at"}
	courseColumns   = []string{
		"id", "category_id", "user_id", "name", "image", "recommended", "introductory",
		"content", "likes_count", "chapters_count", "created_at", "updated_at",
	}
	chapterColumns = []string{"id", "course_id", "title", "content", "video", "rank", "created_at", "updated_at"}
	articleColumns = []string{"id", "title", "content", "created_at", "updated_at"}
	settingColumns = []string{"id", "name", "icp", "copyright", "created_at", "updated_at"}

	// joined onto every course read
	courseRelationColumns = []string{
		"categories.id", "categories.name",
		"users.id", "users.username", "users.nickname", "users.avatar", "users.company",
	}
	// joined onto admin chapter reads
	chapterRelationColumns = []string{"courses.id", "courses.name", "courses.user_id"}
)

type scanner interface {
	Scan(dest ...any) error
}

func qualified(table string, columns []string) []string {
	out := make([]string, len(columns))
	for i, column := range columns {
		out[i] = table + "." + column
	}
	return out
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// touch is the SET value of updated_at on every UPDATE.
var touch = sq.Expr("CURRENT_TIMESTAMP")

func scanUser(row scanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.Username, &u.PasswordHash, &u.Nickname, &u.Sex,
		&u.Company, &u.Introduce, &u.Avatar, &u.Role, ts(&u.CreatedAt), ts(&u.UpdatedAt))
	return u, err
}

func scanCategory(row scanner) (models.Category, error) {
	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.Rank, ts(&c.CreatedAt), ts(&c.UpdatedAt))
	return c, err
}

func scanCourse(row scanner) (models.Course, error) {
	var c models.Course
	err := row.Scan(&c.ID, &c.CategoryID, &c.UserID, &c.Name, &c.Image, &c.Recommended, &c.Introductory,
		&c.Content, &c.LikesCount, &c.ChaptersCount, ts(&c.CreatedAt), ts(&c.UpdatedAt))
	return c, err
}

func scanCourseWithRelations(row scanner) (models.Course, error) {
	var (
		c        models.Course
		category models.CategorySummary
		author   models.UserSummary
	)
	err := row.Scan(&c.ID, &c.CategoryID, &c.UserID, &c.Name, &c.Image, &c.Recommended, &c.Introductory,
		&c.Content, &c.LikesCount, &c.ChaptersCount, ts(&c.CreatedAt), ts(&c.UpdatedAt),
		&category.ID, &category.Name,
		&author.ID, &author.Username, &author.Nickname, &author.Avatar, &author.Company)
	if err != nil {
		return models.Course{}, err
	}
	c.Category = &category
	c.User = &author
	return c, nil
}

func scanChapter(row scanner) (models.Chapter, error) {
	var c models.Chapter
	err := row.Scan(&c.ID, &c.CourseID, &c.Title, &c.Content, &c.Video, &c.Rank, ts(&c.CreatedAt), ts(&c.UpdatedAt))
	return c, err
}

func scanChapterWithCourse(row scanner) (models.Chapter, error) {
	var (
		c      models.Chapter
		course models.CourseSummary
	)
	err := row.Scan(&c.ID, &c.CourseID, &c.Title, &c.Content, &c.Video, &c.Rank, ts(&c.CreatedAt), ts(&c.UpdatedAt),
		&course.ID, &course.Name, &course.UserID)
	if err != nil {
		return models.Chapter{}, err
	}
	c.Course = &course
	return c, nil
}

func scanArticle(row scanner) (models.Article, error) {
	var a models.Article
	err := row.Scan(&a.ID, &a.Title, &a.Content, ts(&a.CreatedAt), ts(&a.UpdatedAt))
	return a, err
}

func scanSetting(row scanner) (models.Setting, error) {
	var s models.Setting
	err := row.Scan(&s.ID, &s.Name, &s.ICP, &s.Copyright, ts(&s.CreatedAt), ts(&s.UpdatedAt))
	return s, err
}

// fromCourses selects from courses with the category and author joined.
func fromCourses(b sq.SelectBuilder) sq.SelectBuilder {
	return b.From(coursesTable).
		Join("categories ON categories.id = courses.category_id").
		Join("users ON users.id = courses.user_id")
}

// fromChapters selects from chapters with the owning course joined.
func fromChapters(b sq.SelectBuilder) sq.SelectBuilder {
	return b.From(chaptersTable).
		Join("courses ON courses.id = chapters.course_id")
}

func fromTable(table string) func(sq.SelectBuilder) sq.SelectBuilder {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.From(table)
	}
}

// where conjoins the listing predicates onto b.
func (db *DB) where(b sq.SelectBuilder, predicates []listing.Predicate) sq.SelectBuilder {
	for _, p := range predicates {
		switch p.Op {
		case listing.OpContains:
			b = b.Where(db.dialect.contains(p.Column, p.Value))
		default:
			b = b.Where(sq.Eq{p.Column: p.Value})
		}
	}
	return b
}

// list runs the count query and the page query of a listing. The count
// ignores page bounds.
func list[T any](
	ctx context.Context,
	db *DB,
	from func(sq.SelectBuilder) sq.SelectBuilder,
	columns []string,
	query listing.Query,
	scan func(scanner) (T, error),
) ([]T, int64, error) {
	countQuery, countArgs, err := db.where(from(db.builder.Select("COUNT(*)")), query.Predicates).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	page := db.where(from(db.builder.Select(columns...)), query.Predicates).
		OrderBy(query.OrderBy...).
		Limit(query.Page.Limit()).
		Offset(query.Page.Offset())

	rows, err := all(ctx, db, page, scan)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// all runs a multi-row select. It never returns a nil slice on success.
func all[T any](ctx context.Context, q querier, b sq.Sqlizer, scan func(scanner) (T, error)) ([]T, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]T, 0)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		results = append(results, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return results, nil
}

// one runs a single-row statement (a SELECT, or a write with RETURNING) and
// maps an empty result to notFound.
func one[T any](ctx context.Context, q querier, b sq.Sqlizer, scan func(scanner) (T, error), notFound error) (T, error) {
	var zero T

	query, args, err := b.ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scan(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, notFound
	}
	if err != nil {
		return zero, err
	}
	return item, nil
}

// exec runs a DML statement and returns the number of affected rows.
func exec(ctx context.Context, q querier, b sq.Sqlizer) (int64, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
