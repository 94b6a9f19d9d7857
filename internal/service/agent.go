package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chapterchill/bookstore-service/internal/errs"
	"github.com/chapterchill/bookstore-service/internal/model"
	"github.com/chapterchill/bookstore-service/pkg/auth"
)

// The oracle's structured output is attacker-influenced input: the
// action must hit this closed vocabulary and every parameter is treated
// as an ordinary untrusted string. Anything else degrades to a plain
// conversational reply.
const (
	actionNone           = "none"
	actionSearchBooks    = "search_books"
	actionRecommendBooks = "recommend_books"
	actionAddToWishlist  = "add_to_wishlist"
	actionRequestLending = "request_lending"
)

const (
	snapshotLimit    = 5
	searchLimit      = 8
	lowStockBelow    = 5
	maxParamLength   = 200
	maxSummaryLength = 220
)

type agentPlan struct {
	Action string            `json:"action"`
	Params map[string]string `json:"params"`
	Reply  string            `json:"reply"`
}

type agentBook struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Author         string  `json:"author"`
	Price          float64 `json:"price"`
	Genre          string  `json:"genre"`
	AverageRating  float64 `json:"averageRating"`
	Stock          int     `json:"stock"`
	Popularity     int     `json:"popularity"`
	TimesBorrowed  int     `json:"timesBorrowed"`
	TimesPurchased int     `json:"timesPurchased"`
	Summary        string  `json:"summary"`
}

type lowStockHighlight struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Stock int    `json:"stock"`
}

type catalogSnapshot struct {
	GeneratedAt        time.Time              `json:"generatedAt"`
	PopularBooks       []agentBook            `json:"popularBooks"`
	RecentArrivals     []agentBook            `json:"recentArrivals"`
	LowStockHighlights []lowStockHighlight    `json:"lowStockHighlights"`
	TopGenres          []model.GenreAggregate `json:"topGenres"`
}

func summarizeBook(b model.Book) agentBook {
	summary := truncateRunes(b.Summary, maxSummaryLength)
	if summary != b.Summary {
		summary += "…"
	}
	return agentBook{
		ID:             b.BookUID,
		Title:          b.Title,
		Author:         b.Author,
		Price:          b.Price,
		Genre:          b.Genre,
		AverageRating:  b.AverageRating,
		Stock:          b.Stock,
		Popularity:     b.Popularity,
		TimesBorrowed:  b.TimesBorrowed,
		TimesPurchased: b.TimesPurchased,
		Summary:        summary,
	}
}

func summarizeBooks(books []model.Book) []agentBook {
	out := make([]agentBook, 0, len(books))
	for _, b := range books {
		out = append(out, summarizeBook(b))
	}
	return out
}

// GenerateInsights asks the oracle for marketing copy about one book.
// The reply is free text and is returned as-is: nothing downstream
// interprets it.
func (s *Service) GenerateInsights(ctx context.Context, req model.InsightRequest) (string, error) {
	prompt := fmt.Sprintf(`You are an assistant for an online bookstore.
Given the following book information, craft:
1. A short, energetic marketing blurb (2 sentences max).
2. Two engaging discussion questions for a book club.
3. A suggested reader profile describing who would love this book.

Return each section on its own line prefixed with a label.

Title: %s
Author: %s
Genre: %s
Summary: %s`, req.Title, req.Author, req.Genre, req.Summary)

	out, err := s.oracle.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// Chat runs one turn of the assistant: snapshot, oracle, then dispatch
// of the planned action through the regular service operations. The
// oracle call happens strictly before any mutation.
func (s *Service) Chat(ctx context.Context, actor auth.Actor, req model.ChatRequest) (model.ChatResponse, error) {
	snapshot, err := s.buildCatalogSnapshot(ctx)
	if err != nil {
		// the agent can still hold a conversation without catalog context
		s.log.Warn("build catalog snapshot", zap.Error(err))
		snapshot = nil
	}

	prompt := buildAgentPrompt(req.Message, actor, snapshot)
	raw, err := s.oracle.Complete(ctx, prompt)
	if err != nil {
		return model.ChatResponse{}, err
	}

	plan := parseAgentPlan(raw)
	resp, err := s.dispatchAgentAction(ctx, actor, plan)
	if err != nil {
		s.log.Error("agent action", zap.String("action", plan.Action), zap.Error(err))
		return model.ChatResponse{
			Reply:  "Something went wrong while completing that request. Please try again in a moment.",
			Action: plan.Action,
		}, nil
	}
	return resp, nil
}

func (s *Service) buildCatalogSnapshot(ctx context.Context) (*catalogSnapshot, error) {
	snapshot := &catalogSnapshot{GeneratedAt: time.Now().UTC()}

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		books, err := s.books.TopBooksByPopularity(ctx, snapshotLimit)
		if err != nil {
			return err
		}
		snapshot.PopularBooks = summarizeBooks(books)
		return nil
	})
	gg.Go(func() error {
		books, err := s.books.RecentArrivals(ctx, snapshotLimit)
		if err != nil {
			return err
		}
		snapshot.RecentArrivals = summarizeBooks(books)
		return nil
	})
	gg.Go(func() error {
		books, err := s.books.LowStockBooks(ctx, lowStockBelow, snapshotLimit)
		if err != nil {
			return err
		}
		highlights := make([]lowStockHighlight, 0, len(books))
		for _, b := range books {
			highlights = append(highlights, lowStockHighlight{ID: b.BookUID, Title: b.Title, Stock: b.Stock})
		}
		snapshot.LowStockHighlights = highlights
		return nil
	})
	gg.Go(func() error {
		aggs, err := s.books.GenreAggregates(ctx, snapshotLimit)
		if err != nil {
			return err
		}
		snapshot.TopGenres = aggs
		return nil
	})
	if err := gg.Wait(); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func buildAgentPrompt(message string, actor auth.Actor, snapshot *catalogSnapshot) string {
	catalogSection := "Catalog data is unavailable right now."
	if snapshot != nil {
		if data, err := json.Marshal(snapshot); err == nil {
			catalogSection = string(data)
		}
	}
	userSection := "The user is browsing anonymously."
	if !actor.IsZero() {
		userSection = fmt.Sprintf("The user is signed in as %q (role %s).", actor.Name, actor.Role)
	}

	return fmt.Sprintf(`You are "Chapter & Chill Companion", a proactive assistant for an online bookstore.
You can talk casually, but when you want to take an action you must choose one of the allowed actions.
You have access to real catalog data. Prefer citing the provided data or take an action to fetch more when unsure.
Always respond with JSON matching this shape exactly:
{
  "action": "none" | "search_books" | "recommend_books" | "add_to_wishlist" | "request_lending",
  "params": {"...": "..."},
  "reply": "..."
}

Catalog context:
%s

User context:
%s

Guidelines:
- Use action "none" when a conversational reply is enough.
- Use "search_books" when the user wants titles by keyword. Include a "query" param.
- Use "recommend_books" for genre or mood suggestions. Optionally send a "genre" param.
- Use "add_to_wishlist" only when the user clearly wants a book saved; include "title".
- Use "request_lending" only when the user wants to borrow a book; include "title".
- Never guess book titles; ask for clarification if unsure.
- Whenever you reference books, ground your answer in the catalog snapshot or data returned by actions.
- The "reply" should sound natural and reference what you plan to do.

User message:
"""%s"""`, catalogSection, userSection, message)
}

// parseAgentPlan never fails: output that is not a valid plan becomes a
// conversational no-op carrying the raw text.
func parseAgentPlan(raw string) agentPlan {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```JSON", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var plan agentPlan
	if err := json.Unmarshal([]byte(cleaned), &plan); err != nil {
		return agentPlan{Action: actionNone, Reply: strings.TrimSpace(raw)}
	}
	switch plan.Action {
	case actionNone, actionSearchBooks, actionRecommendBooks, actionAddToWishlist, actionRequestLending:
	default:
		plan.Action = actionNone
	}
	return plan
}

func (p agentPlan) param(key string) string {
	return truncateRunes(strings.TrimSpace(p.Params[key]), maxParamLength)
}

// truncateRunes caps s at max runes so a multibyte character is never
// split mid-sequence.
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func (s *Service) dispatchAgentAction(ctx context.Context, actor auth.Actor, plan agentPlan) (model.ChatResponse, error) {
	switch plan.Action {
	case actionSearchBooks:
		return s.agentSearchBooks(ctx, plan)
	case actionRecommendBooks:
		return s.agentRecommendBooks(ctx, plan)
	case actionAddToWishlist:
		return s.agentAddToWishlist(ctx, actor, plan)
	case actionRequestLending:
		return s.agentRequestLending(ctx, actor, plan)
	default:
		return model.ChatResponse{Reply: plan.Reply, Action: actionNone}, nil
	}
}

func (s *Service) agentSearchBooks(ctx context.Context, plan agentPlan) (model.ChatResponse, error) {
	query := plan.param("query")
	books, err := s.books.SearchBooks(ctx, query, searchLimit)
	if err != nil {
		return model.ChatResponse{}, err
	}

	reply := plan.Reply
	if reply == "" {
		switch {
		case query == "" && len(books) > 0:
			reply = "Here are some of the most popular books in the store right now:"
		case query == "":
			reply = "The catalog looks empty at the moment."
		case len(books) > 0:
			reply = fmt.Sprintf("Here are some matches for %q:", query)
		default:
			reply = fmt.Sprintf("I could not find any books that match %q.", query)
		}
	}
	return model.ChatResponse{
		Reply:  reply,
		Action: actionSearchBooks,
		Data:   map[string]interface{}{"books": summarizeBooks(books)},
	}, nil
}

func (s *Service) agentRecommendBooks(ctx context.Context, plan agentPlan) (model.ChatResponse, error) {
	genre := plan.param("genre")
	books, err := s.books.BooksByGenre(ctx, genre, snapshotLimit)
	if err != nil {
		return model.ChatResponse{}, err
	}

	reply := plan.Reply
	if reply == "" {
		label := genre
		if label == "" {
			label = "popular"
		}
		if len(books) > 0 {
			reply = fmt.Sprintf("Here are a few %s picks you might enjoy:", label)
		} else {
			reply = "I could not find any recommendations right now."
		}
	}
	return model.ChatResponse{
		Reply:  reply,
		Action: actionRecommendBooks,
		Data:   map[string]interface{}{"books": summarizeBooks(books)},
	}, nil
}

func (s *Service) agentFindBook(ctx context.Context, plan agentPlan) (model.Book, bool) {
	if bookID := plan.param("bookId"); bookID != "" {
		if _, err := uuid.Parse(bookID); err == nil {
			if book, err := s.books.GetBook(ctx, bookID); err == nil {
				return book, true
			}
		}
	}
	if title := plan.param("title"); title != "" {
		if book, err := s.books.FindBookByTitle(ctx, title); err == nil {
			return book, true
		}
	}
	return model.Book{}, false
}

func (s *Service) agentAddToWishlist(ctx context.Context, actor auth.Actor, plan agentPlan) (model.ChatResponse, error) {
	if actor.IsZero() {
		return model.ChatResponse{
			Reply:        "Please sign in so I can update your wishlist.",
			Action:       actionAddToWishlist,
			RequiresAuth: true,
		}, nil
	}
	book, ok := s.agentFindBook(ctx, plan)
	if !ok {
		return model.ChatResponse{
			Reply:  "I couldn't locate that book. Could you share the exact title?",
			Action: actionAddToWishlist,
		}, nil
	}

	if _, err := s.AddToWishlist(ctx, actor, book.BookUID); err != nil {
		return model.ChatResponse{}, err
	}

	reply := plan.Reply
	if reply == "" {
		reply = fmt.Sprintf("%s is on your wishlist now!", book.Title)
	}
	return model.ChatResponse{
		Reply:  reply,
		Action: actionAddToWishlist,
		Data:   map[string]interface{}{"book": summarizeBook(book)},
	}, nil
}

func (s *Service) agentRequestLending(ctx context.Context, actor auth.Actor, plan agentPlan) (model.ChatResponse, error) {
	if actor.IsZero() {
		return model.ChatResponse{
			Reply:        "Please sign in so I can request that lending for you.",
			Action:       actionRequestLending,
			RequiresAuth: true,
		}, nil
	}
	book, ok := s.agentFindBook(ctx, plan)
	if !ok {
		return model.ChatResponse{
			Reply:  "I couldn't find that book in the catalog to request a lending.",
			Action: actionRequestLending,
		}, nil
	}

	lending, err := s.RequestLending(ctx, actor, model.CreateLendingRequest{BookID: book.BookUID})
	if err != nil {
		if errors.Is(err, errs.ErrOutOfStock) {
			return model.ChatResponse{
				Reply:  fmt.Sprintf("%s is currently unavailable for lending.", book.Title),
				Action: actionRequestLending,
			}, nil
		}
		return model.ChatResponse{}, err
	}

	reply := plan.Reply
	if reply == "" {
		reply = fmt.Sprintf("Done! I requested %s for you; it is due back on %s.",
			book.Title, lending.DueDate.Format("Jan 2"))
	}
	return model.ChatResponse{
		Reply:  reply,
		Action: actionRequestLending,
		Data: map[string]interface{}{
			"book":    summarizeBook(book),
			"lending": lending,
		},
	}, nil
}
