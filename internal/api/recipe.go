package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tasteit/tasteit/backend/internal/service"
)

// RecipeHandler serves the public, read-only recipe endpoints
type RecipeHandler struct {
	recipes service.IRecipeService
}

func NewRecipeHandler(recipes service.IRecipeService) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router gin.IRouter) {
	recipes := router.Group("/public/recipes")
	{
		recipes.GET("/all", h.ListRecipes)
		recipes.GET("/all/:skipper", h.ListRecipesPage)
		recipes.GET("/search", h.SearchRecipes)
		recipes.GET("/random/:limit", h.RandomRecipes)
		recipes.GET("/byname/:name/:skipper", h.RecipesByName)
		recipes.GET("/bycountry/:country/:skipper", h.RecipesByCountry)
		recipes.GET("/byingredients/:ingredients/:skipper", h.RecipesByIngredients)
		recipes.GET("/bytags/:tags/:skipper", h.RecipesByTags)
		recipes.GET("/:id", h.GetRecipe)
	}
}

// ListRecipes godoc
// @Summary List all recipes
// @Description Returns every recipe, newest first
// @Tags Recipes
// @Produce json
// @Success 200 {array} model.MatchResult
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /public/recipes/all [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	results, err := h.recipes.ListRecipes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// ListRecipesPage godoc
// @Summary List a page of recipes
// @Description Returns ten recipes, newest first, after skipping the given number
// @Tags Recipes
// @Produce json
// @Param skipper path int true "Number of recipes to skip"
// @Success 200 {array} model.MatchResult
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /public/recipes/all/{skipper} [get]
func (h *RecipeHandler) ListRecipesPage(c *gin.Context) {
	var uri skipURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	results, err := h.recipes.ListRecipesPage(c.Request.Context(), uri.Skipper)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetRecipe godoc
// @Summary Get a recipe
// @Tags Recipes
// @Produce json
// @Param id path int true "Recipe ID"
// @Success 200 {object} model.MatchResult
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /public/recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	var uri idURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	result, err := h.recipes.GetRecipe(c.Request.Context(), uri.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RandomRecipes godoc
// @Summary Sample random recipes
// @Description Returns up to limit recipes in random order; successive calls differ
// @Tags Recipes
// @Produce json
// @Param limit path int true "Sample size (1-100)"
// @Success 200 {array} model.MatchResult
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /public/recipes/random/{limit} [get]
func (h *RecipeHandler) RandomRecipes(c *gin.Context) {
	var uri randomURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	results, err := h.recipes.RandomRecipes(c.Request.Context(), uri.Limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// RecipesByName godoc
// @Summary Find recipes by name
// @Description Case-insensitive substring match on the recipe name
// @Tags Recipes
// @Produce json
// @Param name path string true "Name fragment"
// @Param skipper path int true "Number of recipes to skip"
// @Success 200 {array} model.MatchResult
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /public/recipes/byname/{name}/{skipper} [get]
func (h *RecipeHandler) RecipesByName(c *gin.Context) {
	var uri nameURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	results, err := h.recipes.RecipesByName(c.Request.Context(), uri.Name, uri.Skipper)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// RecipesByCountry godoc
// @Summary Find recipes by country
// @Description Case-insensitive substring match on the country of origin
// @Tags Recipes
// @Produce json
// @Param country path string true "Country fragment"
// @Param skipper path int true "Number of recipes to skip"
// @Success 200 {array} model.MatchResult
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /public/recipes/bycountry/{country}/{skipper} [get]
func (h *RecipeHandler) RecipesByCountry(c *gin.Context) {
	var uri countryURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	results, err := h.recipes.RecipesByCountry(c.Request.Context(), uri.Country, uri.Skipper)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// RecipesByIngredients godoc
// @Summary Find recipes by ingredients
// @Description Comma-separated ingredients; a recipe matches when any of its ingredients contains any requested one
// @Tags Recipes
// @Produce json
// @Param ingredients path string true "Comma-separated ingredients"
// @Param skipper path int true "Number of matches to skip"
// @Success 200 {array} model.MatchResult
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /public/recipes/byingredients/{ingredients}/{skipper} [get]
func (h *RecipeHandler) RecipesByIngredients(c *gin.Context) {
	var uri ingredientsURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	results, err := h.recipes.RecipesByIngredients(c.Request.Context(), uri.Ingredients, uri.Skipper)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// RecipesByTags godoc
// @Summary Find recipes by tags
// @Description Comma-separated tags; a recipe matches when one of its tags equals a requested one
// @Tags Recipes
// @Produce json
// @Param tags path string true "Comma-separated tags"
// @Param skipper path int true "Number of matches to skip"
// @Success 200 {array} model.MatchResult
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /public/recipes/bytags/{tags}/{skipper} [get]
func (h *RecipeHandler) RecipesByTags(c *gin.Context) {
	var uri tagsURI
	if err := c.ShouldBindUri(&uri); err != nil {
		respondBadRequest(c, err)
		return
	}

	results, err := h.recipes.RecipesByTags(c.Request.Context(), uri.Tags, uri.Skipper)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// SearchRecipes godoc
// @Summary Search recipes
// @Description All filters are optional and combine with AND. Ingredients and tags match by substring.
// @Tags Recipes
// @Produce json
// @Param name query string false "Name fragment"
// @Param country query string false "Country fragment"
// @Param difficulty query int false "Exact difficulty"
// @Param rating query number false "Exact rating"
// @Param ingredients query string false "Comma-separated ingredients"
// @Param tags query string false "Comma-separated tags"
// @Success 200 {array} model.MatchResult
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /public/recipes/search [get]
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBadRequest(c, err)
		return
	}

	results, err := h.recipes.SearchRecipes(c.Request.Context(), service.SearchParams{
		Name:        q.Name,
		Country:     q.Country,
		Difficulty:  q.Difficulty,
		Rating:      q.Rating,
		Ingredients: q.Ingredients,
		Tags:        q.Tags,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
