// One-off maintenance: point a category at a new image.
//
//	fix-category-image <slug> <image-url>
package main

import (
	"log"
	"os"

	"opticaluna/internal/config"
	"opticaluna/internal/repos"
)

func main() {
	if len(os.Args) != 3 {
		log.Println("usage: fix-category-image <slug> <image-url>")
		os.Exit(1)
	}
	slug, imageURL := os.Args[1], os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		log.Println("config:", err)
		os.Exit(1)
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Println("open db:", err)
		os.Exit(1)
	}
	defer db.Close()

	n, err := repos.NewCategoryRepo(db).UpdateImageBySlug(slug, imageURL)
	if err != nil {
		log.Println("update:", err)
		os.Exit(1)
	}
	if n == 0 {
		log.Printf("no category with slug %q", slug)
		os.Exit(1)
	}
	log.Printf("updated %q -> %s", slug, imageURL)
}
