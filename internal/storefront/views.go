package storefront

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/seashell-books/storefront/internal/domain/models"
)

// home renders the landing view: bestsellers and new arrivals, fetched
// concurrently the way the page fires both requests on mount.
func (s *Session) home(ctx context.Context) {
	var (
		sellers  []models.BestSeller
		arrivals []models.Book
	)
	group, gCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		sellers, err = s.api.Bestsellers(gCtx, 0, 0)
		return err
	})
	group.Go(func() error {
		var err error
		arrivals, err = s.api.NewArrivals(gCtx)
		return err
	})
	if err := group.Wait(); err != nil {
		s.fail("loading the home page failed", err)
		return
	}
	fmt.Fprintln(s.out, "-- Bestsellers this month --")
	for i, entry := range sellers {
		fmt.Fprintf(s.out, "%2d. %s — %s (%d sold)\n",
			i+1, entry.Book.Title, authorName(entry.Book), entry.UnitsSold)
	}
	fmt.Fprintln(s.out, "-- New arrivals --")
	for _, book := range arrivals {
		s.bookLine(book)
	}
}

func (s *Session) books(ctx context.Context) {
	books, err := s.api.Books(ctx)
	if err != nil {
		s.fail("loading books failed", err)
		return
	}
	for _, book := range books {
		s.bookLine(book)
	}
}

func (s *Session) book(ctx context.Context, args []string) {
	id, ok := s.argID(args)
	if !ok {
		return
	}
	book, err := s.api.Book(ctx, id)
	if err != nil {
		s.fail("loading the book failed", err)
		return
	}
	fmt.Fprintf(s.out, "%s\nby %s\n€%s — %d in stock\n",
		book.Title, authorName(book), book.Price.StringFixed(2), book.StockQuantity)
	if book.Desc != "" {
		fmt.Fprintln(s.out, book.Desc)
	}
}

func (s *Session) add(ctx context.Context, args []string) {
	id, ok := s.argID(args)
	if !ok {
		return
	}
	book, err := s.api.Book(ctx, id)
	if err != nil {
		s.fail("adding to cart failed", err)
		return
	}
	s.cart.Add(book)
	fmt.Fprintf(s.out, "Added %q. Cart has %d item(s).\n", book.Title, s.cart.Count())
}

func (s *Session) showCart() {
	items := s.cart.Items()
	if len(items) == 0 {
		fmt.Fprintln(s.out, "Your cart is empty.")
		return
	}
	for _, item := range items {
		fmt.Fprintf(s.out, "%dx %s — €%s each\n",
			item.Quantity, item.Book.Title, item.Book.Price.StringFixed(2))
	}
	fmt.Fprintf(s.out, "Subtotal: €%s\n", s.cart.Subtotal().StringFixed(2))
}

// me is the profile view: login-gated, greets by name claims when the
// token carries them, then lists order history.
func (s *Session) me(ctx context.Context) {
	if !s.auth.Authenticated() {
		fmt.Fprintln(s.out, "Please log in first.")
		s.login(ctx)
		if !s.auth.Authenticated() {
			return
		}
	}
	title := "Your orders"
	if claims, err := s.auth.Claims(); err == nil {
		first, last := claims.FirstName(), claims.LastName()
		if first != "" || last != "" {
			title = fmt.Sprintf("Orders by %s %s", first, last)
		}
	}
	orders, err := s.api.MyOrders(ctx)
	if err != nil {
		s.fail("loading orders failed", err)
		return
	}
	fmt.Fprintf(s.out, "-- %s --\n", title)
	if len(orders) == 0 {
		fmt.Fprintln(s.out, "No orders found.")
		return
	}
	for _, order := range orders {
		s.orderLine(order)
	}
}

func (s *Session) order(ctx context.Context, args []string) {
	id, ok := s.argID(args)
	if !ok {
		return
	}
	order, err := s.api.Order(ctx, id)
	if err != nil {
		s.fail("loading the order failed", err)
		return
	}
	s.orderLine(order)
	for _, item := range order.Items {
		fmt.Fprintf(s.out, "  %s — €%s, quantity %d\n",
			item.Book.Title, item.Book.Price.StringFixed(2), item.Quantity)
	}
}

func (s *Session) cancel(ctx context.Context, args []string) {
	id, ok := s.argID(args)
	if !ok {
		return
	}
	order, err := s.api.CancelOrder(ctx, id)
	if err != nil {
		s.fail("cancelling the order failed", err)
		return
	}
	fmt.Fprintf(s.out, "Order #%d is now %s.\n", order.ID, order.Status)
}

// confirmation is the thank-you view shown after checkout.
func (s *Session) confirmation(order models.Order) {
	fmt.Fprintf(s.out, "Thank you! Order #%d placed, total €%s.\n",
		order.ID, order.TotalPrice.StringFixed(2))
	for _, item := range order.Items {
		fmt.Fprintf(s.out, "  %dx %s\n", item.Quantity, item.Book.Title)
	}
}

func (s *Session) orderLine(order models.Order) {
	marker := ""
	if order.Cancelled() {
		marker = " [cancelled]"
	}
	fmt.Fprintf(s.out, "Order #%d — €%s — %s%s — placed %s\n",
		order.ID, order.TotalPrice.StringFixed(2), order.Status, marker,
		order.OrderDate.Format("2006-01-02 15:04"))
}

func (s *Session) bookLine(book models.Book) {
	fmt.Fprintf(s.out, "[%d] %s — %s — €%s\n",
		book.ID, book.Title, authorName(book), book.Price.StringFixed(2))
}

func authorName(book models.Book) string {
	if book.Author == nil {
		return "unknown author"
	}
	return book.Author.FirstName + " " + book.Author.LastName
}
