package usecase

import (
	"context"

	"mindmap-srv/internal/mindmap"
	"mindmap-srv/internal/mindmap/repository"
)

// List - One summary per stored mind map, most recently updated first
func (uc *implUseCase) List(ctx context.Context, ip mindmap.ListInput) (mindmap.ListOutput, error) {
	ip.Paginate.Adjust()

	summaries, pag, err := uc.repo.GetSummaries(ctx, repository.GetSummariesOptions{
		Limit:  ip.Paginate.Limit,
		Offset: ip.Paginate.Offset(),
		Page:   ip.Paginate.Page,
	})
	if err != nil {
		uc.l.Errorf(ctx, "mindmap.usecase.List: Failed to get summaries: %v", err)
		return mindmap.ListOutput{}, err
	}

	return mindmap.ListOutput{
		MindMaps:  summaries,
		Paginator: pag,
	}, nil
}
