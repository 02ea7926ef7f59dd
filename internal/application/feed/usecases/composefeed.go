package usecases

import (
	"context"
	"sort"

	"revu/internal/application/feed/dto"
	"revu/internal/domain/follow"
	"revu/internal/domain/review"
	"revu/internal/domain/ticket"
	"revu/internal/domain/user"
	"revu/internal/shared/errors"
	"revu/internal/shared/logger"
	"revu/internal/shared/services/markdown"
)

// Scope selects whose posts appear in the feed.
type Scope string

const (
	// ScopeAll merges the viewer's posts with those of everyone they follow.
	ScopeAll Scope = "all"
	// ScopeSelf contains exactly the viewer's own posts.
	ScopeSelf Scope = "self"
)

type ComposeFeedQuery struct {
	ViewerID uint
	Scope    Scope
}

type ComposeFeedResult struct {
	Items []dto.FeedItem `json:"items"`
}

// ComposeFeedUseCase merges tickets and reviews into one reverse
// chronological stream. Review items embed a summary of their parent
// ticket, and user-written bodies are rendered to sanitized HTML.
type ComposeFeedUseCase struct {
	ticketRepo ticket.Repository
	reviewRepo review.Repository
	followRepo follow.Repository
	userRepo   user.Repository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewComposeFeedUseCase(
	ticketRepo ticket.Repository,
	reviewRepo review.Repository,
	followRepo follow.Repository,
	userRepo user.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *ComposeFeedUseCase {
	return &ComposeFeedUseCase{
		ticketRepo: ticketRepo,
		reviewRepo: reviewRepo,
		followRepo: followRepo,
		userRepo:   userRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *ComposeFeedUseCase) Execute(ctx context.Context, query ComposeFeedQuery) (*ComposeFeedResult, error) {
	if query.ViewerID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	ownerIDs, err := uc.ownerSet(ctx, query)
	if err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.FindByOwnerIDs(ctx, ownerIDs)
	if err != nil {
		uc.logger.Errorw("failed to load feed tickets", "error", err, "viewer_id", query.ViewerID)
		return nil, err
	}

	reviews, err := uc.reviewRepo.FindByOwnerIDs(ctx, ownerIDs)
	if err != nil {
		uc.logger.Errorw("failed to load feed reviews", "error", err, "viewer_id", query.ViewerID)
		return nil, err
	}

	ticketsByID, err := uc.parentTickets(ctx, tickets, reviews)
	if err != nil {
		return nil, err
	}

	usernames, err := uc.resolveUsernames(ctx, tickets, reviews, ticketsByID)
	if err != nil {
		return nil, err
	}

	items := make([]dto.FeedItem, 0, len(tickets)+len(reviews))
	for _, tk := range tickets {
		item, err := uc.ticketItem(tk, usernames)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	for _, r := range reviews {
		item, err := uc.reviewItem(r, ticketsByID[r.TicketID()], usernames)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	sortFeed(items)

	return &ComposeFeedResult{Items: items}, nil
}

func (uc *ComposeFeedUseCase) ownerSet(ctx context.Context, query ComposeFeedQuery) ([]uint, error) {
	if query.Scope == ScopeSelf {
		return []uint{query.ViewerID}, nil
	}

	followeeIDs, err := uc.followRepo.FolloweeIDs(ctx, query.ViewerID)
	if err != nil {
		uc.logger.Errorw("failed to load followees", "error", err, "viewer_id", query.ViewerID)
		return nil, err
	}
	return append([]uint{query.ViewerID}, followeeIDs...), nil
}

// parentTickets loads the tickets reviews point at, reusing the ones the
// feed query already fetched.
func (uc *ComposeFeedUseCase) parentTickets(
	ctx context.Context,
	tickets []*ticket.Ticket,
	reviews []*review.Review,
) (map[uint]*ticket.Ticket, error) {
	byID := make(map[uint]*ticket.Ticket, len(tickets))
	for _, tk := range tickets {
		byID[tk.ID()] = tk
	}

	var missing []uint
	seen := make(map[uint]bool)
	for _, r := range reviews {
		id := r.TicketID()
		if byID[id] == nil && !seen[id] {
			seen[id] = true
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return byID, nil
	}

	fetched, err := uc.ticketRepo.FindByIDs(ctx, missing)
	if err != nil {
		uc.logger.Errorw("failed to load parent tickets", "error", err)
		return nil, err
	}
	for _, tk := range fetched {
		byID[tk.ID()] = tk
	}
	return byID, nil
}

func (uc *ComposeFeedUseCase) resolveUsernames(
	ctx context.Context,
	tickets []*ticket.Ticket,
	reviews []*review.Review,
	parents map[uint]*ticket.Ticket,
) (map[uint]string, error) {
	seen := make(map[uint]bool)
	var ids []uint
	add := func(id uint) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, tk := range tickets {
		add(tk.OwnerID())
	}
	for _, r := range reviews {
		add(r.OwnerID())
	}
	for _, tk := range parents {
		add(tk.OwnerID())
	}

	usernames := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return usernames, nil
	}

	users, err := uc.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		uc.logger.Errorw("failed to resolve feed usernames", "error", err)
		return nil, err
	}
	for _, u := range users {
		usernames[u.ID()] = u.Username()
	}
	return usernames, nil
}

func (uc *ComposeFeedUseCase) ticketItem(tk *ticket.Ticket, usernames map[uint]string) (dto.FeedItem, error) {
	descriptionHTML, err := uc.renderer.RenderSanitized(tk.Description())
	if err != nil {
		return dto.FeedItem{}, errors.NewInternalError("failed to render ticket description")
	}

	return dto.FeedItem{
		Kind:            dto.KindTicket,
		ID:              tk.ID(),
		OwnerID:         tk.OwnerID(),
		OwnerUsername:   usernames[tk.OwnerID()],
		CreatedAt:       tk.CreatedAt(),
		Title:           tk.Title(),
		DescriptionHTML: descriptionHTML,
		Image:           tk.Image(),
	}, nil
}

func (uc *ComposeFeedUseCase) reviewItem(r *review.Review, parent *ticket.Ticket, usernames map[uint]string) (dto.FeedItem, error) {
	bodyHTML, err := uc.renderer.RenderSanitized(r.Body())
	if err != nil {
		return dto.FeedItem{}, errors.NewInternalError("failed to render review body")
	}

	item := dto.FeedItem{
		Kind:          dto.KindReview,
		ID:            r.ID(),
		OwnerID:       r.OwnerID(),
		OwnerUsername: usernames[r.OwnerID()],
		CreatedAt:     r.CreatedAt(),
		Rating:        r.Rating(),
		Headline:      r.Headline(),
		BodyHTML:      bodyHTML,
	}

	if parent != nil {
		descriptionHTML, err := uc.renderer.RenderSanitized(parent.Description())
		if err != nil {
			return dto.FeedItem{}, errors.NewInternalError("failed to render ticket description")
		}
		item.Ticket = &dto.TicketSummary{
			ID:              parent.ID(),
			Title:           parent.Title(),
			DescriptionHTML: descriptionHTML,
			Image:           parent.Image(),
			OwnerID:         parent.OwnerID(),
			OwnerUsername:   usernames[parent.OwnerID()],
		}
	}

	return item, nil
}

// sortFeed orders newest first. Equal timestamps put tickets before the
// reviews written against them, then fall back to descending ID.
func sortFeed(items []dto.FeedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		if a.Kind != b.Kind {
			return a.Kind == dto.KindTicket
		}
		return a.ID > b.ID
	})
}
