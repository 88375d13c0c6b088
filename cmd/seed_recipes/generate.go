package main

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/tasteit/tasteit/backend/internal/model"
	"github.com/tasteit/tasteit/backend/internal/store"
)

// commonIngredients is the kitchen vocabulary sample recipes draw their ingredients from
var commonIngredients = []string{
	"sal", "azucar", "aceite", "cebolla",
	"ajo", "tomate", "pollo", "carne", "pescado",
	"arroz", "pasta", "huevo", "huevos", "leche", "harina",
	"pan", "queso", "mayonesa", "mostaza", "vinagre",
	"limon", "naranja", "manzana", "platano", "fresa",
	"chocolate", "vainilla", "canela", "nuez", "mantequilla",
	"crema", "almendra", "cacahuete", "mermelada", "miel",
	"jengibre", "curry", "pimienta", "salvia", "romero",
	"oregano", "laurel", "tomillo", "perejil", "cilantro",
	"menta", "albahaca", "salsa", "sopa", "ensalada",
	"guiso", "horneado", "frito", "asado", "cocido", "microondas",
}

var (
	dishes    = []string{"Tortilla", "Guiso", "Ensalada", "Sopa", "Tarta", "Arroz", "Pasta", "Asado"}
	countries = []string{"Spain", "Mexico", "Argentina", "Peru", "Italy", "France", "Colombia"}
	tags      = []string{"vegetarian", "vegan", "quick", "dessert", "spicy", "classic", "healthy", "family"}
	creators  = []string{"ana", "luis", "marta", "jorge"}
)

// generator builds reproducible sample recipes
type generator struct {
	rng   *rand.Rand
	start time.Time
}

func newGenerator(seed uint64, start time.Time) *generator {
	return &generator{rng: rand.New(rand.NewPCG(seed, seed^0x5eed)), start: start}
}

func (g *generator) pick(from []string, n int) []string {
	idx := g.rng.Perm(len(from))[:n]
	out := make([]string, n)
	for i, j := range idx {
		out[i] = from[j]
	}
	return out
}

// recipes returns n recipes, the i-th created i hours after start
func (g *generator) recipes(n int) []store.SeedRecipe {
	out := make([]store.SeedRecipe, n)
	for i := range out {
		ingredients := g.pick(commonIngredients, 3+g.rng.IntN(5))
		dish := dishes[g.rng.IntN(len(dishes))]
		out[i] = store.SeedRecipe{
			Creator: creators[g.rng.IntN(len(creators))],
			Recipe: model.Recipe{
				Name:        fmt.Sprintf("%s de %s %d", dish, ingredients[0], i+1),
				Description: fmt.Sprintf("%s casero con %s.", dish, strings.Join(ingredients, ", ")),
				Difficulty:  1 + g.rng.IntN(5),
				Image:       fmt.Sprintf("recipes/%s-%d.jpg", strings.ToLower(dish), i+1),
				DateCreated: g.start.Add(time.Duration(i) * time.Hour).UTC().Format(time.RFC3339),
				Country:     countries[g.rng.IntN(len(countries))],
				Rating:      float64(g.rng.IntN(11)) / 2,
				Ingredients: ingredients,
				Tags:        g.pick(tags, 1+g.rng.IntN(3)),
				Steps: model.StringList{
					"Preparar los ingredientes",
					"Cocinar a fuego medio",
					"Servir",
				},
			},
		}
	}
	return out
}
