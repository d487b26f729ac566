// estatectl is a small admin console over the estate API client. It covers
// the day-to-day back-office tasks: logging in, listing and inspecting
// collections, moving inquiries/contacts/feedbacks through their statuses,
// and deleting records.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"estate/pkg/client"
)

// Supported subcommands:
// - login:   Exchange credentials for a persisted session token
// - logout:  Clear the persisted session
// - whoami:  Show the logged-in admin profile
// - list:    List a collection, optionally filtered
// - get:     Show one record as JSON
// - status:  Transition a record's lifecycle status
// - delete:  Permanently remove a record (asks for --yes)
// - qrcode:  Save a property's share QR code PNG

func main() {
	loginCmd := flag.NewFlagSet("login", flag.ExitOnError)
	loginEmail := loginCmd.String("email", "", "Admin email")
	loginPassword := loginCmd.String("password", "", "Admin password")

	listCmd := flag.NewFlagSet("list", flag.ExitOnError)
	listStatus := listCmd.String("status", "", "Filter by status")
	listCategory := listCmd.String("category", "", "Filter by category")
	listSearch := listCmd.String("search", "", "Free-text search")

	statusCmd := flag.NewFlagSet("status", flag.ExitOnError)

	deleteCmd := flag.NewFlagSet("delete", flag.ExitOnError)
	deleteYes := deleteCmd.Bool("yes", false, "Confirm the deletion")

	qrcodeCmd := flag.NewFlagSet("qrcode", flag.ExitOnError)
	qrcodeOut := qrcodeCmd.String("out", "qrcode.png", "Output PNG path")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	api := newAPI()

	var err error
	switch os.Args[1] {
	case "login":
		_ = loginCmd.Parse(os.Args[2:])
		err = runLogin(ctx, api, *loginEmail, *loginPassword)
	case "logout":
		err = api.Session.Logout()
	case "whoami":
		err = runWhoami(ctx, api)
	case "list":
		_ = listCmd.Parse(os.Args[2:])
		err = runList(ctx, api, listCmd.Args(), client.Filters{
			"status":   *listStatus,
			"category": *listCategory,
			"search":   *listSearch,
		})
	case "get":
		err = runGet(ctx, api, os.Args[2:])
	case "status":
		_ = statusCmd.Parse(os.Args[2:])
		err = runStatus(ctx, api, statusCmd.Args())
	case "delete":
		_ = deleteCmd.Parse(os.Args[2:])
		err = runDelete(ctx, api, deleteCmd.Args(), *deleteYes)
	case "qrcode":
		_ = qrcodeCmd.Parse(os.Args[2:])
		err = runQRCode(ctx, api, qrcodeCmd.Args(), *qrcodeOut)
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newAPI() *client.API {
	baseURL := os.Getenv("ESTATE_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	tokenPath := os.Getenv("ESTATE_TOKEN_FILE")
	if tokenPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		tokenPath = filepath.Join(home, ".estate", "token")
	}

	return client.New(baseURL,
		client.WithTokenStore(client.NewFileTokenStore(tokenPath)),
		client.WithUnauthorizedHook(func() {
			fmt.Fprintln(os.Stderr, "session expired, run 'estatectl login' again")
		}),
	)
}

func runLogin(ctx context.Context, api *client.API, email, password string) error {
	if email == "" || password == "" {
		return fmt.Errorf("both -email and -password are required")
	}

	result, err := api.Session.Login(ctx, email, password)
	if err != nil {
		return err
	}

	fmt.Printf("logged in as %s (%s)\n", result.User.Name, result.User.Role)

	return nil
}

func runWhoami(ctx context.Context, api *client.API) error {
	user, err := api.Session.CheckAuth(ctx)
	if err != nil {
		return err
	}

	return printJSON(user)
}

func runList(ctx context.Context, api *client.API, args []string, filters client.Filters) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: estatectl list <resource> [flags]")
	}

	switch args[0] {
	case "properties":
		return listAndPrint(api.Properties.List(ctx, filters))
	case "blog":
		return listAndPrint(api.Blog.List(ctx, filters))
	case "gallery":
		return listAndPrint(api.Gallery.List(ctx, filters))
	case "contacts":
		return listAndPrint(api.Contacts.List(ctx, filters))
	case "inquiries":
		return listAndPrint(api.Inquiries.List(ctx, filters))
	case "feedbacks":
		return listAndPrint(api.Feedbacks.List(ctx, filters))
	case "team":
		return listAndPrint(api.Team.List(ctx, filters))
	case "social":
		return listAndPrint(api.Social.List(ctx, filters))
	default:
		return fmt.Errorf("unknown resource %q", args[0])
	}
}

func listAndPrint[T any](items []T, err error) error {
	if err != nil {
		return err
	}

	return printJSON(items)
}

func runGet(ctx context.Context, api *client.API, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: estatectl get <resource> <id>")
	}
	resource, id := args[0], args[1]

	switch resource {
	case "properties":
		return getAndPrint(api.Properties.Get(ctx, id))
	case "blog":
		return getAndPrint(api.Blog.Get(ctx, id))
	case "gallery":
		return getAndPrint(api.Gallery.Get(ctx, id))
	case "contacts":
		return getAndPrint(api.Contacts.Get(ctx, id))
	case "inquiries":
		return getAndPrint(api.Inquiries.Get(ctx, id))
	case "feedbacks":
		return getAndPrint(api.Feedbacks.Get(ctx, id))
	case "team":
		return getAndPrint(api.Team.Get(ctx, id))
	case "social":
		return getAndPrint(api.Social.Get(ctx, id))
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
}

func getAndPrint[T any](item *T, err error) error {
	if err != nil {
		return err
	}

	return printJSON(item)
}

func runStatus(ctx context.Context, api *client.API, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: estatectl status <resource> <id> <status>")
	}
	resource, id, status := args[0], args[1], args[2]

	switch resource {
	case "properties":
		return getAndPrint(api.Properties.UpdateStatus(ctx, id, status))
	case "contacts":
		return getAndPrint(api.Contacts.UpdateStatus(ctx, id, status))
	case "inquiries":
		return getAndPrint(api.Inquiries.UpdateStatus(ctx, id, status))
	case "feedbacks":
		return getAndPrint(api.Feedbacks.UpdateStatus(ctx, id, status))
	default:
		return fmt.Errorf("resource %q has no status lifecycle", resource)
	}
}

func runDelete(ctx context.Context, api *client.API, args []string, confirmed bool) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: estatectl delete <resource> <id> --yes")
	}
	if !confirmed {
		return fmt.Errorf("refusing to delete without --yes")
	}
	resource, id := args[0], args[1]

	var err error
	switch resource {
	case "properties":
		err = api.Properties.Delete(ctx, id)
	case "blog":
		err = api.Blog.Delete(ctx, id)
	case "gallery":
		err = api.Gallery.Delete(ctx, id)
	case "contacts":
		err = api.Contacts.Delete(ctx, id)
	case "inquiries":
		err = api.Inquiries.Delete(ctx, id)
	case "feedbacks":
		err = api.Feedbacks.Delete(ctx, id)
	case "team":
		err = api.Team.Delete(ctx, id)
	case "social":
		err = api.Social.Delete(ctx, id)
	default:
		return fmt.Errorf("unknown resource %q", resource)
	}
	if err != nil {
		return err
	}

	fmt.Printf("deleted %s/%s\n", resource, id)

	return nil
}

func runQRCode(ctx context.Context, api *client.API, args []string, out string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: estatectl qrcode <property-id> [-out file.png]")
	}

	png, err := api.Properties.ShareQR(ctx, args[0])
	if err != nil {
		return err
	}

	if err := os.WriteFile(out, png, 0o644); err != nil {
		return err
	}

	fmt.Printf("wrote %s (%d bytes)\n", out, len(png))

	return nil
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return encoder.Encode(v)
}

func printUsage() {
	fmt.Println(`estatectl - admin console for the estate API

Usage:
  estatectl login -email <email> -password <password>
  estatectl logout
  estatectl whoami
  estatectl list <resource> [-status s] [-category c] [-search q]
  estatectl get <resource> <id>
  estatectl status <resource> <id> <status>
  estatectl delete <resource> <id> --yes
  estatectl qrcode <property-id> [-out file.png]

Resources:
  properties, blog, gallery, contacts, inquiries, feedbacks, team, social

Environment:
  ESTATE_API_URL    API origin (default http://localhost:8080)
  ESTATE_TOKEN_FILE Session token path (default ~/.estate/token)`)
}
