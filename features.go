package playink

// DefaultFeatures returns the three homepage cards of the course site in
// presentation order.
func DefaultFeatures() []Feature {
	return []Feature{
		{
			Title:       "Starter focused",
			Icon:        "img/undraw_docusaurus_mountain.svg",
			Description: "Primer course provides the basic resources to get familiar with ink! tools and build simple smart contracts like ERC-20 and ERC-721.",
		},
		{
			Title:       "Use case driven",
			Icon:        "img/undraw_docusaurus_tree.svg",
			Description: "Build a relative complex DApp like decentralized exchange and lending market with the guidance in advanced course.",
		},
		{
			Title:       "Architecture open",
			Icon:        "img/undraw_docusaurus_react.svg",
			Description: "Blockchain is aimed for decentralized transactional systems. To build a more non-financial based app, usually need other techs like distributed hash table.",
		},
	}
}
