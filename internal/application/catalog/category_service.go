package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"golang.org/x/text/unicode/norm"
)

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// Create creates a new category, as a root or under a parent
func (s *CategoryService) Create(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error) {
	exists, err := s.categoryRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
	}

	var category *catalog.Category

	if req.ParentID != nil {
		parent, err := s.categoryRepo.FindByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_PARENT", "Parent category not found")
			}
			return nil, err
		}

		category, err = catalog.NewChildCategory(req.Name, parent)
		if err != nil {
			return nil, err
		}
	} else {
		category, err = catalog.NewCategory(req.Name)
		if err != nil {
			return nil, err
		}
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	displayName, err := s.DisplayName(ctx, category)
	if err != nil {
		return nil, err
	}

	return ToCategoryResponse(category, displayName), nil
}

// GetByID retrieves a category by ID
func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	displayName, err := s.DisplayName(ctx, category)
	if err != nil {
		return nil, err
	}

	return ToCategoryResponse(category, displayName), nil
}

// GetByName retrieves a category by name, case-insensitively. When the
// lookup misses it is retried once with the NFKC-normalized form, so
// visually equivalent unicode spellings still resolve.
func (s *CategoryService) GetByName(ctx context.Context, name string) (*CategoryResponse, error) {
	category, err := findCategoryByName(ctx, s.categoryRepo, name)
	if err != nil {
		return nil, err
	}

	displayName, err := s.DisplayName(ctx, category)
	if err != nil {
		return nil, err
	}

	return ToCategoryResponse(category, displayName), nil
}

// DisplayName resolves the ancestor chain of a category and joins the
// names root to leaf
func (s *CategoryService) DisplayName(ctx context.Context, category *catalog.Category) (string, error) {
	ancestorIDs := category.AncestorIDs()
	names := make([]string, 0, len(ancestorIDs)+1)

	for _, id := range ancestorIDs {
		ancestor, err := s.categoryRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				// stale path segment, skip it
				continue
			}
			return "", err
		}
		names = append(names, ancestor.Name)
	}
	names = append(names, category.Name)

	return strings.Join(names, catalog.DisplayNameSeparator), nil
}

// Descendants returns the category and every category reachable below it
func (s *CategoryService) Descendants(ctx context.Context, id uuid.UUID) ([]catalog.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.categoryRepo.FindSubtree(ctx, category.Path)
}

// Tree returns the full category hierarchy as nested nodes, children
// ordered by name at each level
func (s *CategoryService) Tree(ctx context.Context) ([]CategoryTreeNode, error) {
	categories, err := s.categoryRepo.FindAll(ctx, shared.Filter{OrderBy: "name", OrderDir: "asc"})
	if err != nil {
		return nil, err
	}

	return buildCategoryTree(categories), nil
}

// Rename renames a category, keeping names unique
func (s *CategoryService) Rename(ctx context.Context, id uuid.UUID, req RenameCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(category.Name, req.Name) {
		exists, err := s.categoryRepo.ExistsByName(ctx, req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Category with this name already exists")
		}
	}

	if err := category.Rename(req.Name); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}

	displayName, err := s.DisplayName(ctx, category)
	if err != nil {
		return nil, err
	}

	return ToCategoryResponse(category, displayName), nil
}

// Move re-parents a category, rejecting cycles, and rebases the paths of
// the whole subtree
func (s *CategoryService) Move(ctx context.Context, id uuid.UUID, req MoveCategoryRequest) (*CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	subtree, err := s.categoryRepo.FindSubtree(ctx, category.Path)
	if err != nil {
		return nil, err
	}

	oldPath := category.Path
	oldLevel := category.Level

	if req.ParentID != nil {
		parent, err := s.categoryRepo.FindByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, shared.NewDomainError("INVALID_PARENT", "Parent category not found")
			}
			return nil, err
		}

		if err := category.MoveTo(parent); err != nil {
			return nil, err
		}
	} else {
		category.PromoteToRoot()
	}

	levelDelta := category.Level - oldLevel

	toSave := make([]*catalog.Category, 0, len(subtree))
	toSave = append(toSave, category)
	for i := range subtree {
		if subtree[i].ID == category.ID {
			continue
		}
		descendant := subtree[i]
		descendant.RebasePath(oldPath, category.Path, levelDelta)
		toSave = append(toSave, &descendant)
	}

	if err := s.categoryRepo.SaveAll(ctx, toSave); err != nil {
		return nil, err
	}

	displayName, err := s.DisplayName(ctx, category)
	if err != nil {
		return nil, err
	}

	return ToCategoryResponse(category, displayName), nil
}

// Delete removes a category. Its direct children are promoted to root
// and their subtrees rebased; nothing below the deleted node is removed.
func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	children, err := s.categoryRepo.FindChildren(ctx, id)
	if err != nil {
		return err
	}

	for i := range children {
		child := children[i]

		subtree, err := s.categoryRepo.FindSubtree(ctx, child.Path)
		if err != nil {
			return err
		}

		oldPath := child.Path
		oldLevel := child.Level
		child.PromoteToRoot()
		levelDelta := child.Level - oldLevel

		toSave := make([]*catalog.Category, 0, len(subtree))
		toSave = append(toSave, &child)
		for j := range subtree {
			if subtree[j].ID == child.ID {
				continue
			}
			descendant := subtree[j]
			descendant.RebasePath(oldPath, child.Path, levelDelta)
			toSave = append(toSave, &descendant)
		}

		if err := s.categoryRepo.SaveAll(ctx, toSave); err != nil {
			return err
		}
	}

	return s.categoryRepo.Delete(ctx, category.ID)
}

// findCategoryByName performs the case-insensitive lookup with the NFKC retry
func findCategoryByName(ctx context.Context, repo catalog.CategoryRepository, name string) (*catalog.Category, error) {
	category, err := repo.FindByName(ctx, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	normalized := norm.NFKC.String(name)
	if normalized == name {
		return nil, err
	}

	return repo.FindByName(ctx, normalized)
}

// buildCategoryTree builds nested nodes from a flat category list.
// Children are sorted by name at each level.
func buildCategoryTree(categories []catalog.Category) []CategoryTreeNode {
	childrenOf := make(map[uuid.UUID][]*catalog.Category)
	var roots []*catalog.Category

	for i := range categories {
		cat := &categories[i]
		if cat.ParentID == nil {
			roots = append(roots, cat)
		} else {
			childrenOf[*cat.ParentID] = append(childrenOf[*cat.ParentID], cat)
		}
	}

	var build func(cats []*catalog.Category) []CategoryTreeNode
	build = func(cats []*catalog.Category) []CategoryTreeNode {
		sort.Slice(cats, func(i, j int) bool {
			return strings.ToLower(cats[i].Name) < strings.ToLower(cats[j].Name)
		})

		nodes := make([]CategoryTreeNode, len(cats))
		for i, cat := range cats {
			nodes[i] = CategoryTreeNode{
				ID:       cat.ID,
				Name:     cat.Name,
				ParentID: cat.ParentID,
				Level:    cat.Level,
				Children: build(childrenOf[cat.ID]),
			}
		}
		return nodes
	}

	return build(roots)
}
