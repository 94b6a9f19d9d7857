package model

import (
	"time"

	"github.com/lib/pq"
)

type OrderStatus string

const (
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderProcessing, OrderShipped, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// Terminal states admit no further status transitions.
func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type LendingStatus string

const (
	LendingRequested LendingStatus = "requested"
	// LendingApproved is a legacy alias for an active loan. The approve
	// transition goes straight to borrowed; approved stays reachable only
	// through direct mutation and is honored in active checks.
	LendingApproved  LendingStatus = "approved"
	LendingBorrowed  LendingStatus = "borrowed"
	LendingReturned  LendingStatus = "returned"
	LendingCancelled LendingStatus = "cancelled"
)

// Active reports whether the loan currently holds a unit of stock.
func (s LendingStatus) Active() bool {
	return s == LendingBorrowed || s == LendingApproved
}

type Book struct {
	ID             int       `json:"-" db:"id"`
	BookUID        string    `json:"id" db:"book_uid"`
	Title          string    `json:"title" db:"title"`
	Author         string    `json:"author" db:"author"`
	Genre          string    `json:"genre" db:"genre"`
	Summary        string    `json:"summary" db:"summary"`
	Price          float64   `json:"price" db:"price"`
	Stock          int       `json:"stock" db:"stock"`
	CoverImage     string    `json:"coverImage" db:"cover_image"`
	Popularity     int       `json:"popularity" db:"popularity"`
	TimesBorrowed  int       `json:"timesBorrowed" db:"times_borrowed"`
	TimesPurchased int       `json:"timesPurchased" db:"times_purchased"`
	AverageRating  float64   `json:"averageRating" db:"average_rating"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
	Reviews        []Review  `json:"reviews,omitempty" db:"-"`
}

type Review struct {
	ID        int       `json:"-" db:"id"`
	BookID    int       `json:"-" db:"book_id"`
	UserUID   string    `json:"userId" db:"user_uid"`
	UserName  string    `json:"userName" db:"user_name"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Preferences struct {
	FavoriteGenres  []string `json:"favoriteGenres"`
	WantsNewsletter bool     `json:"wantsNewsletter"`
}

type User struct {
	ID              int            `json:"-" db:"id"`
	UserUID         string         `json:"id" db:"user_uid"`
	Name            string         `json:"name" db:"name"`
	Email           string         `json:"email" db:"email"`
	PasswordHash    string         `json:"-" db:"password_hash"`
	Role            string         `json:"role" db:"role"`
	FavoriteGenres  pq.StringArray `json:"-" db:"favorite_genres"`
	WantsNewsletter bool           `json:"-" db:"wants_newsletter"`
	CreatedAt       time.Time      `json:"createdAt" db:"created_at"`
}

func (u User) Prefs() Preferences {
	return Preferences{
		FavoriteGenres:  append([]string(nil), u.FavoriteGenres...),
		WantsNewsletter: u.WantsNewsletter,
	}
}

// UserView is the wire shape of a user; the password hash never leaves
// the repository layer.
type UserView struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Email       string      `json:"email"`
	Role        string      `json:"role"`
	Preferences Preferences `json:"preferences"`
	CreatedAt   time.Time   `json:"createdAt"`
}

func (u User) View() UserView {
	return UserView{
		ID:          u.UserUID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		Preferences: u.Prefs(),
		CreatedAt:   u.CreatedAt,
	}
}

type OrderItem struct {
	ID       int     `json:"-" db:"id"`
	OrderID  int     `json:"-" db:"order_id"`
	BookID   int     `json:"-" db:"book_id"`
	BookUID  string  `json:"bookId" db:"book_uid"`
	Title    string  `json:"title" db:"title"`
	Quantity int     `json:"quantity" db:"quantity"`
	Price    float64 `json:"price" db:"price"`
}

type Order struct {
	ID               int           `json:"-" db:"id"`
	OrderUID         string        `json:"id" db:"order_uid"`
	UserID           int           `json:"-" db:"user_id"`
	UserUID          string        `json:"userId" db:"user_uid"`
	Subtotal         float64       `json:"subtotal" db:"subtotal"`
	Status           OrderStatus   `json:"status" db:"status"`
	PaymentStatus    PaymentStatus `json:"paymentStatus" db:"payment_status"`
	ConfirmationCode string        `json:"confirmationCode" db:"confirmation_code"`
	CreatedAt        time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time     `json:"updatedAt" db:"updated_at"`
	Items            []OrderItem   `json:"items" db:"-"`
}

type Lending struct {
	ID           int           `json:"-" db:"id"`
	LendingUID   string        `json:"id" db:"lending_uid"`
	UserID       int           `json:"-" db:"user_id"`
	UserUID      string        `json:"userId" db:"user_uid"`
	BookID       int           `json:"-" db:"book_id"`
	BookUID      string        `json:"bookId" db:"book_uid"`
	BookTitle    string        `json:"bookTitle" db:"book_title"`
	Status       LendingStatus `json:"status" db:"status"`
	DueDate      time.Time     `json:"dueDate" db:"due_date"`
	ReminderSent bool          `json:"reminderSent" db:"reminder_sent"`
	ApprovedBy   *int          `json:"-" db:"approved_by"`
	ReturnedAt   *time.Time    `json:"returnedAt,omitempty" db:"returned_at"`
	CreatedAt    time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" db:"updated_at"`
}

type RegisterRequest struct {
	Name        string       `json:"name" validate:"required"`
	Email       string       `json:"email" validate:"required,email"`
	Password    string       `json:"password" validate:"required,min=6"`
	Preferences *Preferences `json:"preferences"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

type UpdateProfileRequest struct {
	Name        *string      `json:"name"`
	Preferences *Preferences `json:"preferences"`
}

type UpdateUserRequest struct {
	Name        *string      `json:"name"`
	Role        *string      `json:"role"`
	Preferences *Preferences `json:"preferences"`
}

type BookUpsertRequest struct {
	Title      string  `json:"title" validate:"required"`
	Author     string  `json:"author" validate:"required"`
	Genre      string  `json:"genre" validate:"required"`
	Summary    string  `json:"summary"`
	Price      float64 `json:"price" validate:"gte=0"`
	Stock      int     `json:"stock" validate:"gte=0"`
	CoverImage string  `json:"coverImage"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

type CatalogQuery struct {
	Search string
	Genre  string
	Sort   string
}

type CatalogResponse struct {
	Books  []Book   `json:"books"`
	Genres []string `json:"genres"`
}

type CreateOrderItem struct {
	BookID   string `json:"bookId" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
}

type CreateOrderRequest struct {
	Items []CreateOrderItem `json:"items" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status        *OrderStatus   `json:"status"`
	PaymentStatus *PaymentStatus `json:"paymentStatus"`
}

type CreateLendingRequest struct {
	BookID string `json:"bookId" validate:"required"`
}

type GenreAggregate struct {
	Genre          string  `json:"genre" db:"genre"`
	Books          int     `json:"books" db:"books"`
	AverageRating  float64 `json:"averageRating" db:"average_rating"`
	AveragePrice   float64 `json:"averagePrice" db:"average_price"`
	TotalBorrowed  int     `json:"totalBorrowed" db:"total_borrowed"`
	TotalPurchased int     `json:"totalPurchased" db:"total_purchased"`
}

type GenreStats struct {
	Genre   string `json:"genre" db:"genre"`
	Sales   int    `json:"sales" db:"sales"`
	Borrows int    `json:"borrows" db:"borrows"`
}

type Analytics struct {
	TotalSales    float64      `json:"totalSales"`
	TotalOrders   int          `json:"totalOrders"`
	TotalBorrows  int          `json:"totalBorrows"`
	ActiveBorrows int          `json:"activeBorrows"`
	TopGenres     []GenreStats `json:"topGenres"`
}

type InsightRequest struct {
	Title   string `json:"title" validate:"required"`
	Author  string `json:"author" validate:"required"`
	Genre   string `json:"genre" validate:"required"`
	Summary string `json:"summary" validate:"required"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Reply        string      `json:"reply"`
	Action       string      `json:"action"`
	Data         interface{} `json:"data,omitempty"`
	RequiresAuth bool        `json:"requiresAuth"`
}
