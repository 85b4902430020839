package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"slices"
	"sync"
	"time"

	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	cartrest "github.com/dwikikusuma/storefront/internal/cart/rest"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/notice"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnauthenticated = errors.New("login required")
	ErrDuplicateItem   = errors.New("item already in cart")
	ErrNotInCart       = errors.New("product not in cart")
)

const (
	msgLoginToAdd   = "Login to add an item to the Cart"
	msgDuplicateAdd = "Item already in cart. Use the cart sidebar to update quantity or remove item."
	msgCartFetch    = "Could not fetch cart details. Check that the backend is running, reachable and returns valid JSON."
)

// Service owns the storefront view state: the cached catalog, the raw cart
// record, the merged items derived from both, and the pending search timer.
// All state mutation happens under one mutex, so completion callbacks never
// interleave.
type Service struct {
	catalog  CatalogReader
	cart     CartAPI
	notifier notice.Notifier
	log      *slog.Logger
	debounce Debouncer

	mu       sync.Mutex
	products []catalogdomain.Product
	entries  []cartdomain.Entry // nil means "no cart"
	items    []Item
	loading  bool
	timer    *time.Timer
}

func NewService(catalog CatalogReader, cart CartAPI, notifier notice.Notifier, log *slog.Logger, debounceDelay time.Duration) *Service {
	if debounceDelay <= 0 {
		debounceDelay = 500 * time.Millisecond
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		catalog:  catalog,
		cart:     cart,
		notifier: notifier,
		log:      log,
		debounce: Debouncer{Delay: debounceDelay},
		items:    []Item{},
	}
}

// Load fetches catalog and cart in parallel and derives the merged items.
// A failed catalog fetch keeps whatever catalog was already displayed. A
// failed cart fetch resolves to "no cart" after notifying the user. The
// merge runs regardless: a cart that arrives before the catalog produces
// unresolved items, corrected on the next re-merge.
func (s *Service) Load(ctx context.Context, token string) {
	s.setLoading(true)
	defer s.setLoading(false)

	var (
		products   []catalogdomain.Product
		entries    []cartdomain.Entry
		catalogErr error
		cartErr    error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		products, catalogErr = s.catalog.FetchAll(gctx)
		return nil
	})
	g.Go(func() error {
		entries, cartErr = s.cart.Fetch(gctx, token)
		return nil
	})
	_ = g.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()

	if catalogErr != nil {
		s.log.Error("catalog fetch failed", slog.Any("err", catalogErr))
	} else {
		s.products = products
	}

	if cartErr != nil {
		s.notifyCartError(cartErr)
		s.entries = nil
	} else {
		s.entries = entries
	}

	s.items = Merge(s.entries, s.products)
}

// SearchInput registers one keystroke's worth of search text. The request
// fires only after the debounce delay passes without another keystroke,
// carrying the text captured here. In-flight requests are not cancelled,
// so overlapping searches resolve last-response-wins.
func (s *Service) SearchInput(ctx context.Context, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timer = s.debounce.Schedule(s.timer, func() {
		s.runSearch(ctx, text)
	})
}

// Search runs a catalog search immediately, bypassing the debounce. Meant
// for one-shot callers like the CLI; interactive input goes through
// SearchInput.
func (s *Service) Search(ctx context.Context, text string) {
	s.runSearch(ctx, text)
}

func (s *Service) runSearch(ctx context.Context, text string) {
	products, err := s.catalog.FetchFiltered(ctx, text)
	if err != nil {
		// A failed search renders the same as zero matches.
		s.log.Warn("search failed", slog.String("query", text), slog.Any("err", err))
		products = []catalogdomain.Product{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.items = Merge(s.entries, s.products)
}

// AddOrUpdate is the single authorized path through which cart quantities
// change. The quantity is absolute, not a delta. preventDuplicate guards
// the "add new from catalog" action; the cart view's own quantity controls
// must pass false so adjusting an existing line stays permitted.
func (s *Service) AddOrUpdate(ctx context.Context, token, productID string, qty int, preventDuplicate bool) error {
	if token == "" {
		s.notifier.Notify(notice.LevelError, msgLoginToAdd)
		return ErrUnauthenticated
	}
	if preventDuplicate && s.inCart(productID) {
		s.notifier.Notify(notice.LevelError, msgDuplicateAdd)
		return ErrDuplicateItem
	}

	entries, err := s.cart.SubmitQuantity(ctx, token, productID, qty)
	if err != nil {
		// No optimistic update was applied, so the prior cart stays up.
		s.log.Error("cart update failed",
			slog.String("product_id", productID),
			slog.Int("qty", qty),
			slog.Any("err", err))
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	s.items = Merge(s.entries, s.products)
	return nil
}

// Increment raises an existing line's quantity by one, computed
// client-side because the backend only accepts absolute values.
func (s *Service) Increment(ctx context.Context, token, productID string) error {
	qty, ok := s.quantityOf(productID)
	if !ok {
		return ErrNotInCart
	}
	return s.AddOrUpdate(ctx, token, productID, qty+1, false)
}

// Decrement lowers an existing line's quantity by one. Reaching zero sends
// zero: removal semantics stay with the backend.
func (s *Service) Decrement(ctx context.Context, token, productID string) error {
	qty, ok := s.quantityOf(productID)
	if !ok {
		return ErrNotInCart
	}
	next := qty - 1
	if next < 0 {
		next = 0
	}
	return s.AddOrUpdate(ctx, token, productID, next, false)
}

// Close stops any pending debounce timer.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Service) Products() []catalogdomain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.products)
}

func (s *Service) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

func (s *Service) CartTotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Total(s.items)
}

func (s *Service) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *Service) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}

func (s *Service) inCart(productID string) bool {
	_, ok := s.quantityOf(productID)
	return ok
}

func (s *Service) quantityOf(productID string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ProductID == productID {
			return it.Qty, true
		}
	}
	return 0, false
}

func (s *Service) notifyCartError(err error) {
	var apiErr *cartrest.APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusBadRequest && apiErr.Message != "" {
		s.notifier.Notify(notice.LevelError, apiErr.Message)
		return
	}
	s.log.Warn("cart fetch failed", slog.Any("err", err))
	s.notifier.Notify(notice.LevelError, msgCartFetch)
}
