package models

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Time tolerates both datetime forms the API ships: RFC 3339 and the
// offsetless "2006-01-02T15:04:05" form naive server datetimes arrive
// in. Offsetless values are read as UTC.
type Time struct {
	time.Time
}

const naiveLayout = "2006-01-02T15:04:05"

func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		parsed, err = time.ParseInLocation(naiveLayout, s, time.UTC)
	}
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

type Author struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Biography string `json:"biography,omitempty"`
}

type Book struct {
	ID            int             `json:"id"`
	Title         string          `json:"title"`
	AuthorID      int             `json:"author_id,omitempty"`
	ISBN          string          `json:"isbn,omitempty"`
	Price         decimal.Decimal `json:"price"`
	PublishedDate Time            `json:"published_date"`
	Desc          string          `json:"description,omitempty"`
	StockQuantity int             `json:"stock_quantity"`
	CoverURL      string          `json:"cover_image_url,omitempty"`
	Author        *Author         `json:"author,omitempty"`
	Genre         string          `json:"genre,omitempty"`
	Rating        int             `json:"rating,omitempty"`
}

// BestSeller is one entry of the monthly bestseller list: a book and
// how many units it sold in the requested month.
type BestSeller struct {
	Book      Book `json:"book"`
	UnitsSold int  `json:"units_sold"`
}

type User struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	CreatedAt Time   `json:"created_at,omitempty"`
}

type UserSignup struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
}

type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// JWTToken is the body returned by the login endpoint. AccessToken is
// an opaque bearer credential as far as the store is concerned; claims
// are only ever decoded, never verified, on this side.
type JWTToken struct {
	AccessToken string `json:"access_token"`
	Type        string `json:"type"`
}

// CartItem pairs a book with the quantity the user wants. At most one
// CartItem per book id exists in a cart.
type CartItem struct {
	Book     Book
	Quantity int
}

// OrderElement is one line of an order submission: what the client
// sends, as opposed to OrderItem, which is what the server returns.
type OrderElement struct {
	BookID   int `json:"book_id"`
	Quantity int `json:"quantity"`
}

type OrderItem struct {
	Book            Book            `json:"book"`
	Quantity        int             `json:"quantity"`
	PriceAtPurchase decimal.Decimal `json:"price_at_purchase,omitempty"`
}

type Order struct {
	ID         int             `json:"id"`
	UserID     int             `json:"user_id,omitempty"`
	OrderDate  Time            `json:"order_date"`
	TotalPrice decimal.Decimal `json:"total_price"`
	Status     string          `json:"status"`
	Items      []OrderItem     `json:"-"`
}

// Cancelled reports whether the server has marked the order cancelled.
func (o Order) Cancelled() bool {
	return o.Status == "cancelled"
}
