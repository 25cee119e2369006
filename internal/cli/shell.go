// Package cli is a line-oriented storefront: browse the catalog, build a
// cart, fill in the order form and send it.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/galactic-greens/storefront/internal/cart"
	"github.com/galactic-greens/storefront/internal/models"
	"github.com/galactic-greens/storefront/internal/order"
	"github.com/galactic-greens/storefront/internal/storefront"
)

var errQuit = errors.New("quit")

const helpText = `Commands:
  catalog              list products
  qty <id> <n>         choose how many of a product to add
  add <id>             add the chosen quantity to the cart
  set <id> <n>         set a cart line's quantity (0 removes it)
  dec <id>             remove one unit from a cart line
  cart                 show the cart
  name <text>          set your name (optional)
  phone <text>         set your phone or WhatsApp number
  notes <text>         set delivery notes (optional)
  form                 show the order form
  send                 send the order
  clear                empty the cart
  help                 show this help
  quit                 leave
`

// Shell drives a storefront session from a text stream
type Shell struct {
	session *storefront.Session
	in      io.Reader
	out     io.Writer
}

// NewShell creates a shell over session
func NewShell(session *storefront.Session, in io.Reader, out io.Writer) *Shell {
	return &Shell{session: session, in: in, out: out}
}

// Run reads commands until quit or end of input
func (sh *Shell) Run(ctx context.Context) error {
	fmt.Fprintln(sh.out, "Welcome! Type 'help' for commands.")
	sh.printCatalog()

	scanner := bufio.NewScanner(sh.in)
	for {
		fmt.Fprint(sh.out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := sh.Exec(ctx, scanner.Text()); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(sh.out, "error: %v\n", err)
		}
	}
}

// Exec runs a single command line
func (sh *Shell) Exec(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "catalog", "products":
		sh.printCatalog()
	case "qty":
		id, n, err := idAndCount(args)
		if err != nil {
			return err
		}
		if _, ok := sh.session.Product(id); !ok {
			return cart.ErrUnknownProduct
		}
		sh.session.Cart.SetPendingQuantity(id, n)
		fmt.Fprintf(sh.out, "quantity for #%d: %d\n", id, sh.session.Cart.PendingQuantity(id))
	case "add":
		id, err := productID(args)
		if err != nil {
			return err
		}
		if sh.session.Cart.PendingQuantity(id) == 0 {
			fmt.Fprintln(sh.out, "choose a quantity first: qty <id> <n>")
			return nil
		}
		if err := sh.session.Cart.AddToCart(id); err != nil {
			return err
		}
		line, _ := sh.session.Cart.Line(id)
		fmt.Fprintf(sh.out, "%s in cart: %d\n", line.Name, line.Quantity)
	case "set":
		id, n, err := idAndCount(args)
		if err != nil {
			return err
		}
		sh.session.Cart.UpdateLineQuantity(id, n)
		sh.printCart()
	case "dec":
		id, err := productID(args)
		if err != nil {
			return err
		}
		sh.session.Cart.RemoveOneUnit(id)
		sh.printCart()
	case "cart":
		sh.printCart()
	case "name":
		sh.session.Contact.Name = strings.Join(args, " ")
	case "phone":
		sh.session.Contact.Phone = strings.Join(args, " ")
	case "notes":
		sh.session.Contact.Notes = strings.Join(args, " ")
	case "form":
		sh.printForm()
	case "send":
		sh.send(ctx)
	case "clear":
		sh.session.Cart.Clear()
		fmt.Fprintln(sh.out, "cart cleared")
	case "help":
		fmt.Fprint(sh.out, helpText)
	case "quit", "exit":
		return errQuit
	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
	return nil
}

func (sh *Shell) send(ctx context.Context) {
	fmt.Fprintln(sh.out, "Sending...")
	conf, err := sh.session.Submit(ctx)
	if err != nil {
		fmt.Fprintln(sh.out, order.UserMessage(err))
		return
	}

	fmt.Fprintln(sh.out, "Order sent successfully! We'll contact you soon.")
	fmt.Fprintf(sh.out, "Reference: %s\n", conf.Reference)
	fmt.Fprintf(sh.out, "Total: KSh %s\n", models.FormatAmount(conf.Total))
}

func (sh *Shell) printForm() {
	c := sh.session.Contact
	if c.IsZero() {
		fmt.Fprintln(sh.out, "No contact details yet. Use name, phone and notes.")
		return
	}
	fmt.Fprintf(sh.out, "Name: %s\nPhone: %s\nNotes: %s\n", orDash(c.Name), orDash(c.Phone), orDash(c.Notes))
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func (sh *Shell) printCatalog() {
	tw := tabwriter.NewWriter(sh.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCT\tPRICE")
	for _, p := range sh.session.Catalog {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", p.ID, p.Name, models.PriceLabel(p))
	}
	tw.Flush()
}

func (sh *Shell) printCart() {
	lines := sh.session.Cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(sh.out, "Your cart is empty.")
		return
	}

	tw := tabwriter.NewWriter(sh.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCT\tQTY\tTOTAL")
	for _, l := range lines {
		fmt.Fprintf(tw, "%d\t%s\t%d\tKSh %s\n", l.ProductID, l.Name, l.Quantity, models.FormatAmount(l.Total()))
	}
	tw.Flush()
	fmt.Fprintf(sh.out, "Items: %d  Total: KSh %s\n", sh.session.Cart.Count(), models.FormatAmount(sh.session.Cart.Total()))
}

func productID(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, errors.New("missing product id")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid product id %q", args[0])
	}
	return id, nil
}

func idAndCount(args []string) (int64, int, error) {
	id, err := productID(args)
	if err != nil {
		return 0, 0, err
	}
	if len(args) < 2 {
		return 0, 0, errors.New("missing quantity")
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid quantity %q", args[1])
	}
	return id, n, nil
}
