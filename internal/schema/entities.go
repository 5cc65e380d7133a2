package schema

import (
	"strconv"
	"strings"

	"ethela-storefront/internal/domain"
)

// DefaultBlogAuthor pre-fills the author of a new post.
const DefaultBlogAuthor = "Ethéla Team"

// Products describes domain.Product.
var Products = &Descriptor[domain.Product]{
	Name:     "product",
	Noun:     "product",
	Label:    "Product",
	Plural:   "products",
	Endpoint: "products",
	Fields: []Field{
		{Name: "name", Label: "Name", Kind: KindText, Required: true},
		{Name: "description", Label: "Description", Kind: KindLongText},
		{Name: "price", Label: "Price (INR)", Kind: KindNumber, Required: true},
		{Name: "image_url", Label: "Image URL", Kind: KindText},
		{Name: "blockchain_url", Label: "Blockchain URL", Kind: KindText},
		{Name: "featured", Label: "Featured", Kind: KindBool, Default: "false"},
	},
	build: func(f Form) domain.Product {
		price, _ := ParseNumber(f["price"])
		featured, _ := ParseBool(f["featured"])
		return domain.Product{
			Name:          strings.TrimSpace(f["name"]),
			Description:   strings.TrimSpace(f["description"]),
			Price:         price,
			ImageURL:      strings.TrimSpace(f["image_url"]),
			BlockchainURL: strings.TrimSpace(f["blockchain_url"]),
			Featured:      featured,
		}
	},
	formOf: func(p domain.Product) Form {
		return Form{
			"name":           p.Name,
			"description":    p.Description,
			"price":          formatNumber(p.Price),
			"image_url":      p.ImageURL,
			"blockchain_url": p.BlockchainURL,
			"featured":       strconv.FormatBool(p.Featured),
		}
	},
	idOf: func(p domain.Product) string { return p.ID },
}

// Blogs describes domain.BlogPost.
var Blogs = &Descriptor[domain.BlogPost]{
	Name:     "blog",
	Noun:     "blog post",
	Label:    "Blog",
	Plural:   "blogs",
	Endpoint: "blogs",
	Fields: []Field{
		{Name: "title", Label: "Title", Kind: KindText, Required: true},
		{Name: "content", Label: "Content", Kind: KindLongText, Required: true},
		{Name: "author", Label: "Author", Kind: KindText, Default: DefaultBlogAuthor},
		{Name: "cover_image_url", Label: "Cover image URL", Kind: KindText},
		{Name: "published", Label: "Published", Kind: KindBool, Default: "true"},
	},
	build: func(f Form) domain.BlogPost {
		published, _ := ParseBool(f["published"])
		return domain.BlogPost{
			Title:         strings.TrimSpace(f["title"]),
			Content:       strings.TrimSpace(f["content"]),
			Author:        strings.TrimSpace(f["author"]),
			CoverImageURL: strings.TrimSpace(f["cover_image_url"]),
			Published:     published,
		}
	},
	formOf: func(b domain.BlogPost) Form {
		return Form{
			"title":           b.Title,
			"content":         b.Content,
			"author":          b.Author,
			"cover_image_url": b.CoverImageURL,
			"published":       strconv.FormatBool(b.Published),
		}
	},
	idOf: func(b domain.BlogPost) string { return b.ID },
}
