package models

import "time"

// DefaultCategories is the category list written on first access
var DefaultCategories = []string{
	"Data Breaches",
	"Cyber Attacks",
	"Vulnerabilities",
	"Threat Intelligence",
	"AI & Cloud Security",
	"Expert Insights",
	"Compliance & GRC",
}

// DefaultAuthors returns the built-in staff list
func DefaultAuthors() []Author {
	return []Author{
		{
			ID:     "a1",
			Name:   "Elena Vance",
			Bio:    "Cybersecurity analyst and forensic expert with over 12 years of experience in incident response.",
			Avatar: "https://picsum.photos/id/64/150/150",
			Role:   RoleEditor,
		},
		{
			ID:     "a2",
			Name:   "Marcus Thorne",
			Bio:    "Threat hunter specialized in APT groups and nation-state level cyber warfare.",
			Avatar: "https://picsum.photos/id/91/150/150",
			Role:   RoleAdmin,
		},
	}
}

// DefaultArticles returns the built-in article set. Publication times are
// relative to now, so callers persist the result once instead of calling
// this again.
func DefaultArticles(now time.Time) []Article {
	return []Article{
		{
			ID:      "1",
			Title:   "Massive Data Breach Exposes Millions of Financial Records at Global Fintech Firm",
			Slug:    "massive-data-breach-fintech-records",
			Excerpt: "A previously unknown vulnerability in a cloud storage configuration has led to the exposure of sensitive data belonging to over 4.5 million users.",
			Content: "## Overview of the Incident\n\n" +
				"A critical data breach has been reported at one of the world's leading fintech providers. Investigators believe the breach occurred over a three-week window during which an unprotected database was accessible via the public internet.\n\n" +
				"### Technical Analysis\n\n" +
				"The root cause was identified as a misconfigured S3 bucket. Security researchers at InfosecWire noted that the misconfiguration was likely introduced during a routine infrastructure update.\n\n" +
				"### Impact\n\n" +
				"Data exposed includes:\n* Full Names\n* Hashed Passwords\n* Transaction Histories\n* Partial Credit Card Numbers\n\n" +
				"Companies are urged to review their cloud IAM policies immediately.",
			Category:      "Data Breaches",
			AuthorID:      "a1",
			PublishedAt:   now.Add(-time.Hour),
			FeaturedImage: "https://picsum.photos/id/201/1200/600",
			Tags:          []string{"Data Breach", "Fintech", "Cloud Security"},
			IsFeatured:    true,
			Status:        StatusPublished,
		},
		{
			ID:            "2",
			Title:         "New Zero-Day Vulnerability Found in Popular Open Source Web Server",
			Slug:          "new-zero-day-web-server-vulnerability",
			Excerpt:       "A critical vulnerability (CVE-2025-0012) allows for Remote Code Execution on millions of servers worldwide.",
			Content:       "Researchers have discovered a critical zero-day vulnerability in a widely used open-source web server. The flaw, tracked as **CVE-2025-0012**, allows an unauthenticated attacker to execute arbitrary code with root privileges.",
			Category:      "Vulnerabilities",
			AuthorID:      "a2",
			PublishedAt:   now.Add(-24 * time.Hour),
			FeaturedImage: "https://picsum.photos/id/202/1200/600",
			Tags:          []string{"CVE", "Web Security", "Zero-Day"},
			Status:        StatusPublished,
			CVEID:         "CVE-2025-0012",
		},
		{
			ID:            "3",
			Title:         "State-Sponsored Hackers Targeting Critical Infrastructure via Phishing",
			Slug:          "state-sponsored-hackers-phishing-infrastructure",
			Excerpt:       `A new campaign linked to the "Volt Typhoon" group has been detected targeting energy grids across North America.`,
			Content:       "Evidence suggests that threat actors are using highly sophisticated phishing emails to gain initial access to employee workstations within critical infrastructure providers.",
			Category:      "Cyber Attacks",
			AuthorID:      "a2",
			PublishedAt:   now.Add(-48 * time.Hour),
			FeaturedImage: "https://picsum.photos/id/203/1200/600",
			Tags:          []string{"APT", "Phishing", "National Security"},
			Status:        StatusPublished,
		},
		{
			ID:            "4",
			Title:         "The Future of AI in Threat Detection: A Double-Edged Sword",
			Slug:          "future-ai-threat-detection",
			Excerpt:       "While AI offers unprecedented speed in identifying anomalies, it also gives attackers new tools for automated exploitation.",
			Content:       "Large Language Models are being repurposed for both defense and offense. In this deep dive, we look at how security teams are keeping up.",
			Category:      "AI & Cloud Security",
			AuthorID:      "a1",
			PublishedAt:   now.Add(-72 * time.Hour),
			FeaturedImage: "https://picsum.photos/id/204/1200/600",
			Tags:          []string{"AI", "Cyber Defense", "Machine Learning"},
			IsSponsored:   true,
			Status:        StatusPublished,
		},
	}
}
