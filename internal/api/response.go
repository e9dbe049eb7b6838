package api

import (
	"strconv"

	"github.com/pageza/brewfinder/backend/internal/model"
	"github.com/pageza/brewfinder/backend/internal/service"
	"github.com/pageza/brewfinder/backend/internal/types"
)

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func toRecipeBase(r *model.Recipe) types.RecipeBase {
	return types.RecipeBase{
		ID:          formatID(r.ID),
		Title:       r.Title,
		Summary:     r.Summary,
		RoastLevel:  r.RoastLevel,
		GrindSize:   r.GrindSize,
		BeanWeight:  r.BeanWeight,
		WaterTemp:   r.WaterTemp,
		WaterAmount: r.WaterAmount,
		BrewingTime: r.BrewingTime,
		ViewCount:   r.ViewCount,
		PublishedAt: r.PublishedAt,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Tags:        toTags(r.Tags),
	}
}

func toRecipeSummary(r *model.Recipe) types.RecipeSummary {
	names := make([]string, len(r.Equipment))
	for i, e := range r.Equipment {
		names[i] = e.Name
	}
	return types.RecipeSummary{
		RecipeBase: toRecipeBase(r),
		Equipment:  names,
	}
}

func toRecipeList(res *service.SearchResult) types.RecipeListResponse {
	recipes := make([]types.RecipeSummary, len(res.Recipes))
	for i := range res.Recipes {
		recipes[i] = toRecipeSummary(&res.Recipes[i])
	}
	return types.RecipeListResponse{
		Recipes:    recipes,
		Pagination: types.NewPagination(res.Page, res.Limit, res.Total),
	}
}

func toRecipeDetail(r *model.Recipe) types.RecipeDetail {
	equipment := make([]types.EquipmentDetail, len(r.Equipment))
	for i, e := range r.Equipment {
		equipment[i] = types.EquipmentDetail{
			ID:            formatID(e.ID),
			Name:          e.Name,
			Brand:         e.Brand,
			Description:   e.Description,
			AffiliateLink: e.AffiliateLink,
			Type:          e.Type.Name,
		}
	}

	steps := make([]types.Step, len(r.Steps))
	for i, s := range r.Steps {
		steps[i] = types.Step{
			Order:       s.StepOrder,
			TimeSeconds: s.TimeSeconds,
			Description: s.Description,
		}
	}

	detail := types.RecipeDetail{
		RecipeBase: toRecipeBase(r),
		Equipment:  equipment,
		Steps:      steps,
	}
	if b := r.Barista; b != nil {
		links := make([]types.SocialLink, len(b.SocialLinks))
		for i, l := range b.SocialLinks {
			links[i] = types.SocialLink{Platform: l.Platform, URL: l.URL}
		}
		detail.Barista = &types.Barista{
			ID:          formatID(b.ID),
			Name:        b.Name,
			Affiliation: b.Affiliation,
			SocialLinks: links,
		}
	}
	return detail
}

func toTags(tags []model.Tag) []types.Tag {
	out := make([]types.Tag, len(tags))
	for i, t := range tags {
		out[i] = types.Tag{ID: formatID(t.ID), Name: t.Name, Slug: t.Slug}
	}
	return out
}

func toEquipmentGroups(groups map[string][]model.Equipment) types.EquipmentGroups {
	out := make(types.EquipmentGroups, len(model.EquipmentGroups))
	for _, name := range model.EquipmentGroups {
		items := make([]types.EquipmentItem, len(groups[name]))
		for i, e := range groups[name] {
			items[i] = types.EquipmentItem{
				ID:    formatID(e.ID),
				Name:  e.Name,
				Brand: e.Brand,
				Type:  name,
			}
		}
		out[name] = items
	}
	return out
}
