// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MKhiriev/course-cms/internal/adapter"
	"github.com/MKhiriev/course-cms/models"
)

var (
	errNoCommand      = errors.New("no command given")
	errUnknownCommand = errors.New("unknown command")
	errMissingID      = errors.New("-id must be a positive integer")
)

const usage = `usage: client [-s server] [-t token] [-timeout 10s] <command> [flags]

commands:
  sign-in -login <login> -password <password>   print an administrator token
  categories                                     list categories
  delete-category -id <id>                       delete a category without courses
  delete-course -id <id>                         delete a course without chapters
  version                                        print the server version
  build-info                                     print the client build information
`

// run executes the subcommand in args against the server behind a and writes
// its output to out.
func run(ctx context.Context, a adapter.AdminAdapter, args []string, out io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(out, usage)
		return errNoCommand
	}

	command, rest := args[0], args[1:]
	switch command {
	case "sign-in":
		return signIn(ctx, a, rest, out)
	case "categories":
		return listCategories(ctx, a, out)
	case "delete-category":
		return deleteByID(ctx, "category", a.DeleteCategory, rest, out)
	case "delete-course":
		return deleteByID(ctx, "course", a.DeleteCourse, rest, out)
	case "version":
		version, err := a.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, version)
		return nil
	default:
		fmt.Fprint(out, usage)
		return fmt.Errorf("%w: %q", errUnknownCommand, command)
	}
}

func signIn(ctx context.Context, a adapter.AdminAdapter, args []string, out io.Writer) error {
	var credentials models.Credentials
	fs := flag.NewFlagSet("sign-in", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&credentials.Login, "login", "", "email or username")
	fs.StringVar(&credentials.Password, "password", "", "password")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := a.SignIn(ctx, credentials)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	return nil
}

func listCategories(ctx context.Context, a adapter.AdminAdapter, out io.Writer) error {
	categories, err := a.Categories(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRANK\tNAME")
	for _, category := range categories {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", category.ID, category.Rank, category.Name)
	}
	return tw.Flush()
}

func deleteByID(ctx context.Context, entity string, del func(context.Context, int64) error, args []string, out io.Writer) error {
	var id int64
	fs := flag.NewFlagSet("delete-"+entity, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Int64Var(&id, "id", 0, entity+" id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if id <= 0 {
		return errMissingID
	}

	if err := del(ctx, id); err != nil {
		if errors.Is(err, adapter.ErrConflict) {
			return fmt.Errorf("%s %d still has dependent records: %w", entity, id, err)
		}
		return err
	}
	fmt.Fprintf(out, "%s %d deleted\n", entity, id)
	return nil
}
