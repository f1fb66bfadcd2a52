package feed

import "github.com/infosecwire/newsroom-api/internal/models"

// TrendingLimit is how many published articles the trending list shows
const TrendingLimit = 5

// Home is the front page composition
type Home struct {
	Featured *models.Article  `json:"featured"`
	Articles []models.Article `json:"articles"`
	Trending []models.Article `json:"trending"`
}

// ComposeHome builds the front page from every published article and the
// subset currently on display (a category page or search result, or all of
// them). The featured article is the first featured one on display, falling
// back to the first featured published article. It is left out of the
// regular list.
func ComposeHome(published, display []models.Article) Home {
	var featured *models.Article
	for _, list := range [][]models.Article{display, published} {
		for i := range list {
			if list[i].IsFeatured {
				a := list[i]
				featured = &a
				break
			}
		}
		if featured != nil {
			break
		}
	}

	regular := make([]models.Article, 0, len(display))
	for _, a := range display {
		if featured != nil && a.ID == featured.ID {
			continue
		}
		regular = append(regular, a)
	}

	trending := published
	if len(trending) > TrendingLimit {
		trending = trending[:TrendingLimit]
	}

	return Home{
		Featured: featured,
		Articles: regular,
		Trending: append([]models.Article{}, trending...),
	}
}
