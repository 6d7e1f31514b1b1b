// Package domain contains the core data structures of the application.
package domain

// OrgSummary holds the headline facts about a single GitHub organization.
// It is what the CLI prints for each requested organization.
type OrgSummary struct {
	Name        string `json:"name"`
	Login       string `json:"login"`
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name,omitempty"`
	Description string `json:"description,omitempty"`
	PublicRepos int    `json:"public_repos"`
	ReposURL    string `json:"repos_url"`
	HTMLURL     string `json:"html_url"`
}
