package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// HomepageSectionSize caps each homepage section
const HomepageSectionSize = 8

// HomepageCache caches the assembled homepage response. A nil cache is
// valid and disables caching.
type HomepageCache interface {
	// GetHomepage returns the cached homepage, or ok=false on a miss
	GetHomepage(ctx context.Context) (*HomepageResponse, bool, error)

	// SetHomepage stores the homepage with the cache's TTL
	SetHomepage(ctx context.Context, homepage *HomepageResponse) error

	// InvalidateHomepage drops the cached homepage
	InvalidateHomepage(ctx context.Context) error
}

// ItemService handles catalog item business operations
type ItemService struct {
	itemRepo     catalog.ItemRepository
	categoryRepo catalog.CategoryRepository
	tagRepo      catalog.TagRepository
	supplierRepo catalog.SupplierRepository
	cache        HomepageCache
	logger       *zap.Logger
}

// NewItemService creates a new ItemService
func NewItemService(
	itemRepo catalog.ItemRepository,
	categoryRepo catalog.CategoryRepository,
	tagRepo catalog.TagRepository,
	supplierRepo catalog.SupplierRepository,
	cache HomepageCache,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		itemRepo:     itemRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		supplierRepo: supplierRepo,
		cache:        cache,
		logger:       logger,
	}
}

// Create creates a new catalog item
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	if existing, err := s.itemRepo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Item with this name already exists")
	} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if existing, err := s.itemRepo.FindBySKU(ctx, req.SKU); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Item with this SKU already exists")
	} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	item, err := catalog.NewItem(req.Name, req.SKU, req.Price)
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		item.SetDescription(req.Description)
	}
	if req.DiscountPrice != nil {
		if err := item.SetDiscount(*req.DiscountPrice); err != nil {
			return nil, err
		}
	}
	if req.Stock != nil {
		if err := item.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}
	if req.ReleaseDate != nil {
		item.SetReleaseDate(*req.ReleaseDate)
	}

	if req.SupplierID != nil {
		supplier, err := s.supplierRepo.FindByID(ctx, *req.SupplierID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier not found")
			}
			return nil, err
		}
		item.AssignSupplier(supplier.ID)
	}

	if err := s.attachRelations(ctx, item, req.CategoryIDs, req.TagIDs); err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateHomepage(ctx)

	return ToItemResponse(item), nil
}

// Update applies partial updates to an item
func (s *ItemService) Update(ctx context.Context, id uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		item.SetDescription(*req.Description)
	}
	if req.Price != nil {
		if err := item.SetPrice(*req.Price); err != nil {
			return nil, err
		}
	}
	if req.ClearDiscount {
		item.ClearDiscount()
	} else if req.DiscountPrice != nil {
		if err := item.SetDiscount(*req.DiscountPrice); err != nil {
			return nil, err
		}
	}
	if req.Stock != nil {
		if err := item.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}
	if req.ReleaseDate != nil {
		item.SetReleaseDate(*req.ReleaseDate)
	}
	if req.SupplierID != nil {
		item.AssignSupplier(*req.SupplierID)
	}
	if req.IsActive != nil {
		if *req.IsActive {
			item.Activate()
		} else {
			item.Deactivate()
		}
	}

	if req.CategoryIDs != nil || req.TagIDs != nil {
		if err := s.attachRelations(ctx, item, req.CategoryIDs, req.TagIDs); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateHomepage(ctx)

	return ToItemResponse(item), nil
}

// Delete removes an item from the catalog
func (s *ItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.itemRepo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.itemRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateHomepage(ctx)
	return nil
}

// GetByName retrieves the item detail, resolving the supplier, and bumps
// the view counter
func (s *ItemService) GetByName(ctx context.Context, name string) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.IncrementViews(ctx, item.ID); err != nil {
		// a lost view count never fails the read
		s.logger.Warn("failed to increment item views",
			zap.String("item_id", item.ID.String()), zap.Error(err))
	} else {
		item.Views++
	}

	resp := ToItemResponse(item)

	if item.SupplierID != nil {
		supplier, err := s.supplierRepo.FindByID(ctx, *item.SupplierID)
		if err == nil {
			resp.Supplier = ToSupplierResponse(supplier)
		} else if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
	}

	return resp, nil
}

// FilterByCategory returns the items linked to the named category or to
// any of its descendants, deduplicated
func (s *ItemService) FilterByCategory(ctx context.Context, categoryName string) ([]ItemListResponse, error) {
	category, err := findCategoryByName(ctx, s.categoryRepo, categoryName)
	if err != nil {
		return nil, err
	}

	subtree, err := s.categoryRepo.FindSubtree(ctx, category.Path)
	if err != nil {
		return nil, err
	}

	categoryIDs := make([]uuid.UUID, len(subtree))
	for i := range subtree {
		categoryIDs[i] = subtree[i].ID
	}

	items, err := s.itemRepo.FindByCategoryIDs(ctx, categoryIDs)
	if err != nil {
		return nil, err
	}

	return ToItemListResponses(items), nil
}

// Search returns items whose name contains the query, case-insensitively.
// A blank query matches nothing.
func (s *ItemService) Search(ctx context.Context, query string) ([]ItemListResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []ItemListResponse{}, nil
	}

	items, err := s.itemRepo.SearchByName(ctx, query, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}

	return ToItemListResponses(items), nil
}

// Homepage assembles the storefront landing sections, serving from the
// cache when one is configured. The random featured section is populated
// only when every curated section came back empty; it is assembled per
// request and never stored in the cache.
func (s *ItemService) Homepage(ctx context.Context) (*HomepageResponse, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.GetHomepage(ctx)
		if err != nil {
			s.logger.Warn("homepage cache read failed", zap.Error(err))
		} else if ok {
			resp := *cached
			if err := s.populateFeatured(ctx, &resp); err != nil {
				return nil, err
			}
			return &resp, nil
		}
	}

	newest, err := s.itemRepo.ListNewest(ctx, HomepageSectionSize)
	if err != nil {
		return nil, err
	}
	discounted, err := s.itemRepo.ListDiscounted(ctx, HomepageSectionSize)
	if err != nil {
		return nil, err
	}
	bestSelling, err := s.itemRepo.ListBestSelling(ctx, HomepageSectionSize)
	if err != nil {
		return nil, err
	}
	topRated, err := s.itemRepo.ListTopRated(ctx, HomepageSectionSize)
	if err != nil {
		return nil, err
	}

	homepage := &HomepageResponse{
		NewArrivals: ToItemListResponses(newest),
		Specials:    ToItemListResponses(discounted),
		BestSellers: ToItemListResponses(bestSelling),
		TopRated:    ToItemListResponses(topRated),
		Featured:    []ItemListResponse{},
	}

	if s.cache != nil {
		cacheable := *homepage
		if err := s.cache.SetHomepage(ctx, &cacheable); err != nil {
			s.logger.Warn("homepage cache write failed", zap.Error(err))
		}
	}

	if err := s.populateFeatured(ctx, homepage); err != nil {
		return nil, err
	}

	return homepage, nil
}

// populateFeatured fills the random fallback section when every curated
// section is empty
func (s *ItemService) populateFeatured(ctx context.Context, homepage *HomepageResponse) error {
	homepage.Featured = []ItemListResponse{}
	if len(homepage.NewArrivals) > 0 || len(homepage.Specials) > 0 ||
		len(homepage.BestSellers) > 0 || len(homepage.TopRated) > 0 {
		return nil
	}

	random, err := s.itemRepo.ListRandom(ctx, HomepageSectionSize)
	if err != nil {
		return err
	}
	homepage.Featured = ToItemListResponses(random)
	return nil
}

// CreateTag creates a new tag
func (s *ItemService) CreateTag(ctx context.Context, req CreateTagRequest) (*TagResponse, error) {
	if existing, err := s.tagRepo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Tag with this name already exists")
	} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	tag, err := catalog.NewTag(req.Name)
	if err != nil {
		return nil, err
	}

	if err := s.tagRepo.Save(ctx, tag); err != nil {
		return nil, err
	}

	return ToTagResponse(tag), nil
}

// CreateSupplier creates a new supplier
func (s *ItemService) CreateSupplier(ctx context.Context, req CreateSupplierRequest) (*SupplierResponse, error) {
	if existing, err := s.supplierRepo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier with this name already exists")
	} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	supplier, err := catalog.NewSupplier(req.Name)
	if err != nil {
		return nil, err
	}
	if err := supplier.SetEmail(req.Email); err != nil {
		return nil, err
	}
	if err := supplier.SetPhone(req.Phone); err != nil {
		return nil, err
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	return ToSupplierResponse(supplier), nil
}

// attachRelations resolves and links categories and tags onto an item
func (s *ItemService) attachRelations(ctx context.Context, item *catalog.Item, categoryIDs, tagIDs []uuid.UUID) error {
	if categoryIDs != nil {
		categories := make([]catalog.Category, 0, len(categoryIDs))
		for _, id := range categoryIDs {
			category, err := s.categoryRepo.FindByID(ctx, id)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					return shared.NewDomainError("INVALID_CATEGORY", "Category not found: "+id.String())
				}
				return err
			}
			categories = append(categories, *category)
		}
		item.Categories = categories
	}

	if tagIDs != nil {
		tags, err := s.tagRepo.FindByIDs(ctx, tagIDs)
		if err != nil {
			return err
		}
		if len(tags) != len(tagIDs) {
			return shared.NewDomainError("INVALID_TAG", "One or more tags not found")
		}
		item.Tags = tags
	}

	return nil
}

// invalidateHomepage drops the cached homepage after catalog writes
func (s *ItemService) invalidateHomepage(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateHomepage(ctx); err != nil {
		s.logger.Warn("homepage cache invalidation failed", zap.Error(err))
	}
}
