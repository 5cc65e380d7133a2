package console

import (
	"errors"
	"fmt"
	"strings"

	"ethela-storefront/internal/client"
	"ethela-storefront/internal/domain"
	"github.com/spf13/cobra"
)

// errSilent marks failures already reported through a notification.
var errSilent = errors.New("command failed")

// IsSilent reports whether err was already shown to the user.
func IsSilent(err error) bool { return errors.Is(err, errSilent) }

func (a *app) featuredCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Show featured products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := a.api.Featured(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("failed to load products: %w", err)
			}
			if len(items) == 0 {
				a.printf("No featured products yet.\n")
				return nil
			}
			a.printProducts(items)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 4, "maximum number of products")
	return cmd
}

func (a *app) collectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "Show every product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := a.api.Collections(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load products: %w", err)
			}
			if len(items) == 0 {
				a.printf("No products available yet.\n")
				return nil
			}
			a.printProducts(items)
			return nil
		},
	}
}

func (a *app) printProducts(items []client.Product) {
	for _, p := range items {
		a.printf("%-32s %12s  %s\n", p.Name, p.PriceFormatted, p.ID)
		if p.Description != "" {
			a.printf("    %s\n", p.Description)
		}
		if p.BlockchainURL != "" {
			a.printf("    certificate: %s\n", p.BlockchainURL)
		}
	}
}

func (a *app) blogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blog [id]",
		Short: "Read the journal, or one post by id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				post, err := a.api.Blog(cmd.Context(), args[0])
				if errors.Is(err, domain.ErrNotFound) {
					return fmt.Errorf("blog post %s not found", args[0])
				}
				if err != nil {
					return fmt.Errorf("failed to load blog post: %w", err)
				}
				a.printf("%s\nby %s, %s\n\n%s\n", post.Title, post.Author, post.CreatedAt.Format("2 January 2006"), post.Content)
				return nil
			}
			posts, err := a.api.Blogs(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to load blog posts: %w", err)
			}
			if len(posts) == 0 {
				a.printf("No blog posts yet.\n")
				return nil
			}
			for _, p := range posts {
				a.printf("%s  %s  (%s, %s)\n", p.ID, p.Title, p.Author, p.CreatedAt.Format("2 Jan 2006"))
				if excerpt := excerpt(p.Content, 120); excerpt != "" {
					a.printf("    %s\n", excerpt)
				}
			}
			return nil
		},
	}
}

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <code>",
		Short: "Verify a jewellery certificate code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.api.Verify(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}
			if !res.IsValid || res.Certificate == nil {
				a.printf("Certificate %s was not found. Please check the code and try again.\n", res.Code)
				return nil
			}
			c := res.Certificate
			a.printf("Certificate %s is authentic\n", c.Code)
			a.printf("  product:      %s\n", c.ProductName)
			a.printf("  manufacturer: %s\n", c.Manufacturer)
			a.printf("  carat/colour/clarity/cut: %s / %s / %s / %s\n", c.Carat, c.Color, c.Clarity, c.Cut)
			a.printf("  origin:       %s\n", c.Origin)
			a.printf("  blockchain:   %s\n", c.BlockchainHash)
			if c.CertificateURL != "" {
				a.printf("  certificate:  %s\n", c.CertificateURL)
			}
			return nil
		},
	}
}

func (a *app) cartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage the local cart",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.api.Product(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to load product: %w", err)
			}
			sessionID, err := a.state.AddToCart(p.ID)
			if err != nil {
				return err
			}
			a.printf("Added %s to cart (session %s)\n", p.Name, sessionID)
			return nil
		},
	}, &cobra.Command{
		Use:   "show",
		Short: "List the product ids in the cart",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			ids := a.state.Cart()
			if len(ids) == 0 {
				a.printf("Your cart is empty.\n")
				return nil
			}
			for _, id := range ids {
				a.printf("%s\n", id)
			}
			return nil
		},
	})
	return cmd
}

func (a *app) contactCmd() *cobra.Command {
	var msg domain.ContactMessage
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message to the Ethéla team",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ack, err := a.api.Contact(cmd.Context(), msg)
			if err != nil {
				return fmt.Errorf("failed to send message: %w", err)
			}
			a.printf("%s\n", ack)
			return nil
		},
	}
	cmd.Flags().StringVar(&msg.Name, "name", "", "your name")
	cmd.Flags().StringVar(&msg.Email, "email", "", "your email")
	cmd.Flags().StringVar(&msg.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&msg.Subject, "subject", "", "subject")
	cmd.Flags().StringVar(&msg.Message, "message", "", "message body")
	return cmd
}

func excerpt(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
