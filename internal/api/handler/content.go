package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/trendwise-api/internal/domain"
	"github.com/vfg2006/trendwise-api/internal/usecases/analyzing"
	"github.com/vfg2006/trendwise-api/internal/usecases/scoring"
	"github.com/vfg2006/trendwise-api/pkg/apiErrors"
	"github.com/vfg2006/trendwise-api/pkg/log"
)

const defaultScorePlatform = "website"

// ScoreContent pontua o conteúdo. Conteúdo vazio não é erro: o motor devolve valores neutros.
func ScoreContent(scorer scoring.Scorer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.ScoreRequest
		if !decodeBody(w, r, &req) {
			return
		}

		platform := strings.TrimSpace(req.Platform)
		if platform == "" {
			platform = defaultScorePlatform
		}

		keywords := req.ResolvedKeywords()
		bundle := scorer.Score(req.Content, keywords, platform)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"platform":  platform,
			"keywords":  len(keywords),
			"seo_score": bundle.SEOScore,
		}).Info("score: conteúdo pontuado")

		writeJSON(w, r, http.StatusOK, bundle)
	})
}

func AnalyzeContent(analyzer analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.AnalyzeRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := analyzer.Analyze(&req)
		if err != nil {
			if errors.Is(err, analyzing.ErrContentRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), map[string]string{"field": "content"})
				return
			}

			log.ForContext(r.Context()).WithError(err).Error("analyze: erro ao analisar conteúdo")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Error analyzing content", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	})
}
