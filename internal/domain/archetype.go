// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultAudience é o arquétipo de público usado quando a chave não é encontrada
	DefaultAudience = "general"
	// DefaultPlatform é o arquétipo de plataforma usado quando a chave não é encontrada
	DefaultPlatform = "website"
)

var ErrInvalidCatalog = errors.New("catálogo de arquétipos inválido")

// EngagementPattern descreve quando um público costuma engajar.
// Dias usam segunda-feira = 0.
type EngagementPattern struct {
	PeakHours            []int   `json:"peak_hours"`
	PeakDays             []int   `json:"peak_days"`
	EngagementMultiplier float64 `json:"engagement_multiplier"`
}

func (p EngagementPattern) IsPeakDay(day int) bool {
	return slices.Contains(p.PeakDays, day)
}

func (p EngagementPattern) IsPeakHour(hour int) bool {
	return slices.Contains(p.PeakHours, hour)
}

func (p EngagementPattern) clone() EngagementPattern {
	return EngagementPattern{
		PeakHours:            slices.Clone(p.PeakHours),
		PeakDays:             slices.Clone(p.PeakDays),
		EngagementMultiplier: p.EngagementMultiplier,
	}
}

func (p EngagementPattern) validate() error {
	if len(p.PeakDays) == 0 {
		return fmt.Errorf("peak_days vazio")
	}
	for _, d := range p.PeakDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("peak_day fora do intervalo 0-6: %d", d)
		}
	}
	for _, h := range p.PeakHours {
		if h < 0 || h > 23 {
			return fmt.Errorf("peak_hour fora do intervalo 0-23: %d", h)
		}
	}
	if p.EngagementMultiplier <= 0 {
		return fmt.Errorf("engagement_multiplier deve ser positivo: %v", p.EngagementMultiplier)
	}
	return nil
}

// PlatformProfile descreve o ritmo de publicação de uma plataforma
type PlatformProfile struct {
	OptimalFrequency string `json:"optimal_frequency"`
	BestTimes        []int  `json:"best_times"` // Informativo, não usado na geração de slots
	ContentLifespan  string `json:"content_lifespan"`
	PostsPerWeek     int    `json:"posts_per_week"`
}

func (p PlatformProfile) clone() PlatformProfile {
	c := p
	c.BestTimes = slices.Clone(p.BestTimes)
	return c
}

func (p PlatformProfile) validate() error {
	if p.PostsPerWeek <= 0 {
		return fmt.Errorf("posts_per_week deve ser positivo: %d", p.PostsPerWeek)
	}
	if strings.TrimSpace(p.OptimalFrequency) == "" {
		return fmt.Errorf("optimal_frequency vazio")
	}
	return nil
}

// Catalog guarda as tabelas de arquétipos. É imutável depois de construído e
// pode ser compartilhado entre goroutines sem lock.
type Catalog struct {
	patterns  map[string]EngagementPattern
	platforms map[string]PlatformProfile
}

// NewCatalog valida e copia as tabelas, normalizando as chaves para minúsculas
func NewCatalog(patterns map[string]EngagementPattern, platforms map[string]PlatformProfile) (*Catalog, error) {
	c := &Catalog{
		patterns:  make(map[string]EngagementPattern, len(patterns)),
		platforms: make(map[string]PlatformProfile, len(platforms)),
	}

	for key, p := range patterns {
		if err := p.validate(); err != nil {
			return nil, errors.Wrapf(ErrInvalidCatalog, "público %q: %v", key, err)
		}
		c.patterns[normalizeKey(key)] = p.clone()
	}

	for key, p := range platforms {
		if err := p.validate(); err != nil {
			return nil, errors.Wrapf(ErrInvalidCatalog, "plataforma %q: %v", key, err)
		}
		c.platforms[normalizeKey(key)] = p.clone()
	}

	if _, ok := c.patterns[DefaultAudience]; !ok {
		return nil, errors.Wrapf(ErrInvalidCatalog, "público padrão %q ausente", DefaultAudience)
	}
	if _, ok := c.platforms[DefaultPlatform]; !ok {
		return nil, errors.Wrapf(ErrInvalidCatalog, "plataforma padrão %q ausente", DefaultPlatform)
	}

	return c, nil
}

// Pattern resolve o padrão de engajamento do público. O segundo retorno é a
// chave efetivamente usada e o terceiro indica se houve fallback.
func (c *Catalog) Pattern(audience string) (EngagementPattern, string, bool) {
	key := normalizeKey(audience)
	if p, ok := c.patterns[key]; ok {
		return p.clone(), key, false
	}
	return c.patterns[DefaultAudience].clone(), DefaultAudience, true
}

// Platform resolve o perfil da plataforma com fallback para website
func (c *Catalog) Platform(platform string) (PlatformProfile, string, bool) {
	key := normalizeKey(platform)
	if p, ok := c.platforms[key]; ok {
		return p.clone(), key, false
	}
	return c.platforms[DefaultPlatform].clone(), DefaultPlatform, true
}

// IsReady indica se as duas tabelas estão carregadas
func (c *Catalog) IsReady() bool {
	return c != nil && len(c.patterns) > 0 && len(c.platforms) > 0
}

func (c *Catalog) Audiences() []string {
	keys := make([]string, 0, len(c.patterns))
	for k := range c.patterns {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (c *Catalog) Platforms() []string {
	keys := make([]string, 0, len(c.platforms))
	for k := range c.platforms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// DefaultEngagementPatterns retorna a tabela padrão de públicos
func DefaultEngagementPatterns() map[string]EngagementPattern {
	return map[string]EngagementPattern{
		"business": {
			PeakHours:            []int{9, 10, 11, 14, 15},
			PeakDays:             []int{1, 2, 3, 4}, // Terça a sexta
			EngagementMultiplier: 1.3,
		},
		"general": {
			PeakHours:            []int{10, 12, 15, 19, 20},
			PeakDays:             []int{0, 1, 2, 3, 4},
			EngagementMultiplier: 1.0,
		},
		"tech": {
			PeakHours:            []int{8, 9, 14, 15, 16},
			PeakDays:             []int{1, 2, 3, 4},
			EngagementMultiplier: 1.2,
		},
		"lifestyle": {
			PeakHours:            []int{7, 8, 12, 18, 19, 20},
			PeakDays:             []int{0, 1, 2, 3, 4, 5, 6},
			EngagementMultiplier: 1.1,
		},
		"education": {
			PeakHours:            []int{8, 9, 10, 14, 15, 16},
			PeakDays:             []int{0, 1, 2, 3, 4},
			EngagementMultiplier: 1.15,
		},
	}
}

// DefaultPlatformProfiles retorna a tabela padrão de plataformas
func DefaultPlatformProfiles() map[string]PlatformProfile {
	return map[string]PlatformProfile{
		"website": {
			OptimalFrequency: "daily",
			BestTimes:        []int{9, 10, 14, 15},
			ContentLifespan:  "30 days",
			PostsPerWeek:     5,
		},
		"blog": {
			OptimalFrequency: "2-3 times per week",
			BestTimes:        []int{9, 10, 11},
			ContentLifespan:  "60-90 days",
			PostsPerWeek:     3,
		},
		"social_media": {
			OptimalFrequency: "multiple times daily",
			BestTimes:        []int{8, 12, 17, 19},
			ContentLifespan:  "2-3 days",
			PostsPerWeek:     14,
		},
		"email": {
			OptimalFrequency: "weekly",
			BestTimes:        []int{9, 10},
			ContentLifespan:  "7 days",
			PostsPerWeek:     1,
		},
	}
}

// DefaultCatalog monta o catálogo com as tabelas padrão
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(DefaultEngagementPatterns(), DefaultPlatformProfiles())
	if err != nil {
		// As tabelas padrão são constantes; erro aqui é bug de programação
		panic(err)
	}
	return c
}
