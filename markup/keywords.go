package markup

// Keywords configures the term lists used by cleaning and scoring.
// The defaults target news articles.
type Keywords struct {
	// Noise are class/id fragments of containers removed by the cleaner.
	Noise []string `yaml:"noise"`

	// Author terms indicate biographical content and are penalized.
	Author []string `yaml:"author"`

	// Topic terms indicate subject matter and are rewarded.
	Topic []string `yaml:"topic"`
}

// DefaultKeywords returns the news-domain keyword lists.
func DefaultKeywords() Keywords {
	return Keywords{
		Noise: []string{
			"author", "bio", "profile", "writer", "correspondent", "journalist",
			"sidebar", "related", "advertisement", "ad", "social", "share",
		},
		Author: []string{
			"graduated", "graduate", "university", "degree", "bachelor", "master's",
			"phd", "alumnus", "alumna", "journalism school", "studied",
			"correspondent", "reporter", "journalist", "columnist", "editor",
			"staff writer", "contributor", "biography", "born in", "joined the",
			"previously worked", "years of experience", "follow him", "follow her",
			"twitter", "award-winning",
		},
		Topic: []string{
			"government", "minister", "president", "parliament", "election",
			"policy", "economy", "budget", "tax", "market", "company", "industry",
			"police", "court", "officials", "announced", "according", "report",
			"percent", "million", "billion", "investigation", "agreement",
			"crisis", "health", "climate", "war", "public",
		},
	}
}

// merge fills empty lists in k from the defaults.
func (k Keywords) merge() Keywords {
	def := DefaultKeywords()
	if k.Noise == nil {
		k.Noise = def.Noise
	}
	if k.Author == nil {
		k.Author = def.Author
	}
	if k.Topic == nil {
		k.Topic = def.Topic
	}
	return k
}
