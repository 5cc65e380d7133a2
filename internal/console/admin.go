package console

import (
	"errors"
	"fmt"
	"strings"

	"ethela-storefront/internal/domain"
	"ethela-storefront/internal/format"
	"ethela-storefront/internal/manager"
	"ethela-storefront/internal/schema"
	"github.com/spf13/cobra"
)

type entityCommand[T any] struct {
	a      *app
	desc   *schema.Descriptor[T]
	store  func() manager.Store[T]
	render func(T) string
}

func (a *app) productsCmd() *cobra.Command {
	return entityCommand[domain.Product]{
		a:     a,
		desc:  schema.Products,
		store: func() manager.Store[domain.Product] { return a.api.Products() },
		render: func(p domain.Product) string {
			flag := ""
			if p.Featured {
				flag = " ★"
			}
			return fmt.Sprintf("%s  %-32s %12s%s", p.ID, p.Name, format.INR(p.Price), flag)
		},
	}.build()
}

func (a *app) blogsCmd() *cobra.Command {
	return entityCommand[domain.BlogPost]{
		a:     a,
		desc:  schema.Blogs,
		store: func() manager.Store[domain.BlogPost] { return a.api.BlogPosts() },
		render: func(b domain.BlogPost) string {
			state := "draft"
			if b.Published {
				state = "published"
			}
			return fmt.Sprintf("%s  %-40s %-9s by %s", b.ID, b.Title, state, b.Author)
		},
	}.build()
}

func (e entityCommand[T]) manager(assumeYes bool) (*manager.Manager[T], error) {
	if _, err := e.a.requireLogin(e.desc.Plural); err != nil {
		return nil, err
	}
	return manager.New(e.desc, e.store(), writerNotifier{w: e.a.errOut}, promptConfirmer{a: e.a, assumeYes: assumeYes}, e.a.logger), nil
}

func (e entityCommand[T]) build() *cobra.Command {
	cmd := &cobra.Command{
		Use:   e.desc.Endpoint,
		Short: fmt.Sprintf("Manage %s (admin)", e.desc.Plural),
	}
	cmd.AddCommand(e.listCmd(), e.addCmd(), e.editCmd(), e.deleteCmd(), e.fieldsCmd())
	return cmd
}

func (e entityCommand[T]) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List all %s", e.desc.Plural),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := e.manager(false)
			if err != nil {
				return err
			}
			if err := m.Load(cmd.Context()); err != nil {
				return errSilent
			}
			items := m.Items()
			if len(items) == 0 {
				e.a.printf("No %s yet.\n", e.desc.Plural)
				return nil
			}
			for _, it := range items {
				e.a.printf("%s\n", e.render(it))
			}
			return nil
		},
	}
}

func (e entityCommand[T]) addCmd() *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "add",
		Short: fmt.Sprintf("Add a %s", e.desc.Noun),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := e.manager(false)
			if err != nil {
				return err
			}
			m.Open()
			if err := applySets(m, sets); err != nil {
				return err
			}
			if err := m.Submit(cmd.Context()); err != nil {
				return errSilent
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field=value, repeatable")
	return cmd
}

func (e entityCommand[T]) editCmd() *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: fmt.Sprintf("Edit a %s", e.desc.Noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := e.manager(false)
			if err != nil {
				return err
			}
			if err := m.Load(cmd.Context()); err != nil {
				return errSilent
			}
			item, ok := e.find(m.Items(), args[0])
			if !ok {
				return fmt.Errorf("%s %s not found", e.desc.Noun, args[0])
			}
			m.Edit(item)
			if err := applySets(m, sets); err != nil {
				return err
			}
			if err := m.Submit(cmd.Context()); err != nil {
				return errSilent
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field=value, repeatable")
	return cmd
}

func (e entityCommand[T]) deleteCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: fmt.Sprintf("Delete a %s", e.desc.Noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := e.manager(yes)
			if err != nil {
				return err
			}
			err = m.Delete(cmd.Context(), args[0])
			switch {
			case errors.Is(err, manager.ErrDeclined):
				e.a.printf("Cancelled\n")
				return nil
			case err != nil:
				return errSilent
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func (e entityCommand[T]) fieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: fmt.Sprintf("Describe the editable %s fields", e.desc.Noun),
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			for _, f := range e.desc.Fields {
				req := ""
				if f.Required {
					req = " (required)"
				}
				def := ""
				if f.Default != "" {
					def = fmt.Sprintf(" default=%q", f.Default)
				}
				e.a.printf("%-16s %-9s %s%s%s\n", f.Name, f.Kind, f.Label, req, def)
			}
			return nil
		},
	}
}

func (e entityCommand[T]) find(items []T, id string) (T, bool) {
	for _, it := range items {
		if e.desc.IDOf(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func applySets[T any](m *manager.Manager[T], sets []string) error {
	for _, kv := range sets {
		field, value, ok := strings.Cut(kv, "=")
		if !ok {
			return fmt.Errorf("--set %q: expected field=value", kv)
		}
		if err := m.Set(strings.TrimSpace(field), value); err != nil {
			return err
		}
	}
	return nil
}
