package drugservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	drugdb "github.com/tripsit/tripsit-api/app/modules/drug/infrastructure/repositories"
	"github.com/tripsit/tripsit-api/internal/domain"
	"github.com/tripsit/tripsit-api/internal/operation"
	"github.com/tripsit/tripsit-api/internal/results"
	"github.com/tripsit/tripsit-api/internal/sanitize"
	"github.com/uptrace/bun"
)

type articleResult = results.OperationResult[*drugdb.DrugArticle, error]

// CreateDrugArticle links an external article. The title is stripped of
// markup and the description keeps only safe formatting.
func (s *DrugService) CreateDrugArticle(ctx context.Context, in CreateArticleInput) (*drugdb.DrugArticle, error) {
	return operation.Run(s.runner, ctx, "CreateDrugArticle", in.DrugID.String(),
		func(ctx context.Context, db bun.IDB) (articleResult, error) {
			title := sanitize.Plain(in.Title)
			if title == "" {
				return results.FailureResult[*drugdb.DrugArticle, error](domain.NewValidationError("title", "title is required")), nil
			}
			if in.PostedBy == uuid.Nil {
				return results.FailureResult[*drugdb.DrugArticle, error](domain.NewValidationError("postedBy", "acting user is required")), nil
			}

			article := &drugdb.DrugArticle{
				DrugID:         in.DrugID,
				URL:            in.URL,
				Title:          title,
				Description:    sanitize.Rich(in.Description),
				PublishedAt:    in.PublishedAt,
				LastModifiedBy: in.PostedBy,
				PostedBy:       in.PostedBy,
			}
			if err := s.repo.CreateArticle(ctx, db, article); err != nil {
				if failure := constraintFailure(err); failure != nil {
					return results.FailureResult[*drugdb.DrugArticle, error](failure), nil
				}
				return articleResult{}, err
			}
			return results.SuccessResult[*drugdb.DrugArticle, error](article), nil
		})
}

func (s *DrugService) UpdateDrugArticle(ctx context.Context, id uuid.UUID, in ArticleUpdate) (*drugdb.DrugArticle, error) {
	return operation.Run(s.runner, ctx, "UpdateDrugArticle", id.String(),
		func(ctx context.Context, db bun.IDB) (articleResult, error) {
			article, err := s.repo.GetArticle(ctx, db, id)
			if err != nil {
				if errors.Is(err, drugdb.ErrNotFound) {
					return results.FailureResult[*drugdb.DrugArticle, error](ErrArticleNotFound), nil
				}
				return articleResult{}, err
			}

			if in.URL != nil {
				article.URL = *in.URL
			}
			if in.Title != nil {
				title := sanitize.Plain(*in.Title)
				if title == "" {
					return results.FailureResult[*drugdb.DrugArticle, error](domain.NewValidationError("title", "title is required")), nil
				}
				article.Title = title
			}
			if in.Description != nil {
				article.Description = sanitize.Rich(in.Description)
			}
			if in.PublishedAt != nil {
				article.PublishedAt = in.PublishedAt
			}
			if in.LastModifiedBy != uuid.Nil {
				article.LastModifiedBy = in.LastModifiedBy
			}

			if err := s.repo.UpdateArticle(ctx, db, article); err != nil {
				if errors.Is(err, drugdb.ErrNoRowsAffected) {
					return results.FailureResult[*drugdb.DrugArticle, error](ErrArticleNotFound), nil
				}
				if failure := constraintFailure(err); failure != nil {
					return results.FailureResult[*drugdb.DrugArticle, error](failure), nil
				}
				return articleResult{}, err
			}
			return results.SuccessResult[*drugdb.DrugArticle, error](article), nil
		})
}

// DeleteDrugArticle hard-deletes the article.
func (s *DrugService) DeleteDrugArticle(ctx context.Context, id uuid.UUID) error {
	_, err := operation.Run(s.runner, ctx, "DeleteDrugArticle", id.String(),
		func(ctx context.Context, db bun.IDB) (results.OperationResult[struct{}, error], error) {
			return deleted(s.repo.DeleteArticle(ctx, db, id), ErrArticleNotFound)
		})
	return err
}
