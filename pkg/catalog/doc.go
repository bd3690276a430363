// Package catalog is the roadmap service's knowledge base.
//
// A [Catalog] holds curated role records (skills, prerequisites and a
// progression per job role) and a course list, and answers the two
// questions the service is asked: which roles match a partial query
// ([Catalog.Suggest]) and what the roadmap for a role looks like
// ([Catalog.Generate]). Roles without a curated record get a roadmap built
// from keywords in the title ([Extract]).
//
// The default data set is embedded in the binary; [Load] reads replacement
// files from disk.
package catalog
