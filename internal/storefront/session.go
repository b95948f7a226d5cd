// Package storefront is the interactive shopping session: catalog,
// cart, account and order views behind a prompt loop. Cart and auth
// state belong to one session and vanish with it.
package storefront

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/seashell-books/storefront/internal/api"
	"github.com/seashell-books/storefront/internal/auth"
	"github.com/seashell-books/storefront/internal/cart"
	"github.com/seashell-books/storefront/internal/checkout"
	"github.com/seashell-books/storefront/internal/domain/models"
	"github.com/seashell-books/storefront/internal/logger"
)

type Session struct {
	api  *api.Client
	cart *cart.Store
	auth *auth.Store
	flow *checkout.Flow

	in  *bufio.Scanner
	out io.Writer
}

func NewSession(client *api.Client, authStore *auth.Store, in io.Reader, out io.Writer) *Session {
	cartStore := cart.New()
	return &Session{
		api:  client,
		cart: cartStore,
		auth: authStore,
		flow: checkout.New(cartStore, authStore, client),
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Run reads commands until quit or EOF. Every command catches its own
// errors: they are logged, shown, and never crash the session.
func (s *Session) Run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Welcome to the Seashell bookstore. Type 'help' for commands.")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			return s.in.Err()
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			fmt.Fprintln(s.out, "Bye.")
			return nil
		}
		s.dispatch(ctx, cmd, args)
	}
}

func (s *Session) dispatch(ctx context.Context, cmd string, args []string) {
	switch cmd {
	case "help":
		s.help()
	case "home":
		s.home(ctx)
	case "books":
		s.books(ctx)
	case "book":
		s.book(ctx, args)
	case "add":
		s.add(ctx, args)
	case "cart":
		s.showCart()
	case "clear":
		s.cart.Clear()
		fmt.Fprintln(s.out, "Cart cleared.")
	case "signup":
		s.signup(ctx)
	case "login":
		s.login(ctx)
	case "logout":
		s.auth.Logout()
		fmt.Fprintln(s.out, "Logged out.")
	case "me":
		s.me(ctx)
	case "order":
		s.order(ctx, args)
	case "cancel":
		s.cancel(ctx, args)
	case "checkout":
		s.checkout(ctx)
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type 'help'.\n", cmd)
	}
}

func (s *Session) help() {
	fmt.Fprint(s.out, `Commands:
  home              bestsellers and new arrivals
  books             list all books
  book <id>         show one book
  add <id>          add a book to the cart
  cart              show the cart
  clear             empty the cart
  signup            create an account
  login / logout    manage the session
  me                profile and order history
  order <id>        show one order
  cancel <id>       cancel an order
  checkout          place the order
  quit              leave the store
`)
}

// fail is the single error policy of the session: log it, show a plain
// message, move on.
func (s *Session) fail(what string, err error) {
	log := logger.Get()
	log.Error().Err(err).Msg(what)
	fmt.Fprintf(s.out, "%s: %v\n", what, err)
}

func (s *Session) argID(args []string) (int, bool) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "Expected exactly one id argument.")
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Not a numeric id: %q\n", args[0])
		return 0, false
	}
	return id, true
}

// prompt reads one line of input for a named field.
func (s *Session) prompt(field string) string {
	fmt.Fprintf(s.out, "%s: ", field)
	if !s.in.Scan() {
		return ""
	}
	return strings.TrimSpace(s.in.Text())
}

func (s *Session) signup(ctx context.Context) {
	signup := models.UserSignup{
		FirstName: s.prompt("first name"),
		LastName:  s.prompt("last name"),
		Email:     s.prompt("email"),
		Password:  s.prompt("password"),
	}
	user, err := s.api.Signup(ctx, signup)
	if err != nil {
		s.fail("signup failed", err)
		return
	}
	fmt.Fprintf(s.out, "Account created for %s %s. Please log in.\n", user.FirstName, user.LastName)
}

func (s *Session) login(ctx context.Context) {
	creds := models.Credentials{
		Email:    s.prompt("email"),
		Password: s.prompt("password"),
	}
	if err := s.auth.Login(ctx, creds); err != nil {
		s.fail("login failed", err)
		return
	}
	name := "back"
	if claims, err := s.auth.Claims(); err == nil {
		if first := claims.FirstName(); first != "" {
			name = first
		}
	}
	fmt.Fprintf(s.out, "Welcome %s!\n", name)
}

func (s *Session) checkout(ctx context.Context) {
	order, err := s.flow.Run(ctx)
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		fmt.Fprintln(s.out, "Your cart is empty.")
	case errors.Is(err, checkout.ErrNotAuthenticated):
		// checkout is gated on login; send the user there
		fmt.Fprintln(s.out, "Please log in to check out.")
		s.login(ctx)
	case errors.Is(err, checkout.ErrNoUserID):
		fmt.Fprintln(s.out, "Could not read your account from the session token. Please log in again.")
	case err != nil:
		s.fail("checkout failed", err)
	default:
		s.confirmation(order)
	}
}
