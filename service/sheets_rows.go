package service

import (
	"fmt"
	"strings"

	"catalogo-pro/models"
	"catalogo-pro/utils"
)

// This file holds the pure row/range mapping between sheet values
// ([][]interface{} as returned by the Sheets API) and the domain models.
// Nothing here touches the network.

func cellString(row []interface{}, index int) string {
	if index >= len(row) {
		return ""
	}
	if row[index] == nil {
		return ""
	}
	return fmt.Sprint(row[index])
}

func validateCatalogHeader(header []interface{}) error {
	for i, want := range catalogColumns {
		got := strings.ToLower(strings.TrimSpace(cellString(header, i)))
		if got != want {
			return fmt.Errorf("unexpected catalog header: column %d is %q, want %q", i+1, got, want)
		}
	}
	return nil
}

// parseCatalogRows maps the full catalog range (header included) to
// items. An empty range yields an empty list; a header that does not
// match the fixed schema is an error.
func parseCatalogRows(values [][]interface{}) ([]models.CatalogItem, error) {
	if len(values) == 0 {
		return []models.CatalogItem{}, nil
	}

	if err := validateCatalogHeader(values[0]); err != nil {
		return nil, err
	}

	items := make([]models.CatalogItem, 0, len(values)-1)
	for i, row := range values[1:] {
		item := models.CatalogItem{
			ID:          cellString(row, 0),
			Name:        cellString(row, 1),
			Description: cellString(row, 2),
			Price:       cellString(row, 3),
			Image:       cellString(row, 4),
			Action:      cellString(row, 5),
			RowIndex:    i + 2, // 1-based, skipping header
		}

		if item.Image != "" {
			item.Image = utils.NormalizeDriveImageURL(item.Image)
		}
		if item.Action == "" {
			item.Action = defaultWhatsAppAction
		}

		items = append(items, item)
	}

	return items, nil
}

// catalogRowValues is the 6-field row shape written on append and update.
func catalogRowValues(item models.CatalogItem) []interface{} {
	action := item.Action
	if action == "" {
		action = defaultWhatsAppAction
	}
	return []interface{}{item.ID, item.Name, item.Description, item.Price, item.Image, action}
}

// parseCarousel maps the carousel block (header + up to 3 rows). Returns
// nil when the block is missing or holds no usable slide, signalling the
// caller to keep the defaults.
func parseCarousel(values [][]interface{}) []models.CarouselSlide {
	if len(values) < 2 {
		return nil
	}
	slides := make([]models.CarouselSlide, 0, models.MaxCarouselSlides)
	for _, row := range values[1:] {
		if len(slides) == models.MaxCarouselSlides {
			break
		}
		src := cellString(row, 0)
		if src == "" {
			continue
		}
		slides = append(slides, models.CarouselSlide{
			Src: utils.NormalizeDriveImageURL(src),
			Alt: cellString(row, 1),
		})
	}
	if len(slides) == 0 {
		return nil
	}
	return slides
}

func parseFeatures(values [][]interface{}) []models.Feature {
	if len(values) < 2 {
		return nil
	}
	features := make([]models.Feature, 0, models.MaxFeatures)
	for _, row := range values[1:] {
		if len(features) == models.MaxFeatures {
			break
		}
		feature := models.Feature{
			Icon:        cellString(row, 0),
			Title:       cellString(row, 1),
			Description: cellString(row, 2),
		}
		if feature.Icon == "" && feature.Title == "" {
			continue
		}
		features = append(features, feature)
	}
	if len(features) == 0 {
		return nil
	}
	return features
}

func parseStats(values [][]interface{}) []models.Stat {
	if len(values) < 2 {
		return nil
	}
	stats := make([]models.Stat, 0, models.MaxStats)
	for _, row := range values[1:] {
		if len(stats) == models.MaxStats {
			break
		}
		stat := models.Stat{
			Value: cellString(row, 0),
			Label: cellString(row, 1),
		}
		if stat.Value == "" && stat.Label == "" {
			continue
		}
		stats = append(stats, stat)
	}
	if len(stats) == 0 {
		return nil
	}
	return stats
}

// parseHomeKeyValues maps the flat key/value block (header + rows) to a
// map. Rows without a key are skipped.
func parseHomeKeyValues(values [][]interface{}) map[string]string {
	if len(values) < 2 {
		return nil
	}
	kv := make(map[string]string)
	for _, row := range values[1:] {
		key := cellString(row, 0)
		if key == "" {
			continue
		}
		kv[key] = cellString(row, 1)
	}
	return kv
}

// applyHomeKeyValues overlays present keys onto the section and footer
// defaults. Absent keys keep their default value.
func applyHomeKeyValues(content *models.HomeContent, kv map[string]string) {
	for key, value := range kv {
		switch key {
		case "whyUsTitle":
			content.Sections.WhyUsTitle = value
		case "catalogTitle":
			content.Sections.CatalogTitle = value
		case "catalogSubtitle":
			content.Sections.CatalogSubtitle = value
		case "navBrand":
			content.Sections.NavBrand = value
		case "footerBrand":
			content.Footer.Brand = value
		case "footerTagline":
			content.Footer.Tagline = value
		case "avisoLegalLabel":
			content.Footer.AvisoLegalLabel = value
		case "avisoLegalUrl":
			content.Footer.AvisoLegalURL = value
		case "politicaPrivacidadLabel":
			content.Footer.PoliticaPrivacidadLabel = value
		case "politicaPrivacidadUrl":
			content.Footer.PoliticaPrivacidadURL = value
		case "terminosLabel":
			content.Footer.TerminosLabel = value
		case "terminosUrl":
			content.Footer.TerminosURL = value
		case "copyright":
			content.Footer.Copyright = value
		case "copyrightLine":
			content.Footer.CopyrightLine = value
		}
	}
}

func homeKeyValue(payload models.HomeContent, key string) string {
	switch key {
	case "whyUsTitle":
		return payload.Sections.WhyUsTitle
	case "catalogTitle":
		return payload.Sections.CatalogTitle
	case "catalogSubtitle":
		return payload.Sections.CatalogSubtitle
	case "navBrand":
		return payload.Sections.NavBrand
	case "footerBrand":
		return payload.Footer.Brand
	case "footerTagline":
		return payload.Footer.Tagline
	case "avisoLegalLabel":
		return payload.Footer.AvisoLegalLabel
	case "avisoLegalUrl":
		return payload.Footer.AvisoLegalURL
	case "politicaPrivacidadLabel":
		return payload.Footer.PoliticaPrivacidadLabel
	case "politicaPrivacidadUrl":
		return payload.Footer.PoliticaPrivacidadURL
	case "terminosLabel":
		return payload.Footer.TerminosLabel
	case "terminosUrl":
		return payload.Footer.TerminosURL
	case "copyright":
		return payload.Footer.Copyright
	case "copyrightLine":
		return payload.Footer.CopyrightLine
	}
	return ""
}

func carouselValues(slides []models.CarouselSlide) [][]interface{} {
	values := [][]interface{}{{"imageUrl", "altText"}}
	for i, slide := range slides {
		if i == models.MaxCarouselSlides {
			break
		}
		values = append(values, []interface{}{slide.Src, slide.Alt})
	}
	return values
}

func featureValues(features []models.Feature) [][]interface{} {
	values := [][]interface{}{{"icon", "title", "description"}}
	for i, feature := range features {
		if i == models.MaxFeatures {
			break
		}
		values = append(values, []interface{}{feature.Icon, feature.Title, feature.Description})
	}
	return values
}

func statValues(stats []models.Stat) [][]interface{} {
	values := [][]interface{}{{"value", "label"}}
	for i, stat := range stats {
		if i == models.MaxStats {
			break
		}
		values = append(values, []interface{}{stat.Value, stat.Label})
	}
	return values
}

func homeKeyValueRows(payload models.HomeContent) [][]interface{} {
	values := [][]interface{}{{"key", "value"}}
	for _, key := range models.HomeKeyOrder {
		values = append(values, []interface{}{key, homeKeyValue(payload, key)})
	}
	return values
}
