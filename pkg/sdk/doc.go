// Package propdex runs the propdex catalog pipeline in-process: facet
// decoding, filtering, recency sort, pagination, titles and banners.
//
// The catalog is read from Valkey, Redis or PostgreSQL and cached in memory,
// or supplied directly as a static slice.
//
//	client, _ := propdex.New(ctx, propdex.WithValkey("localhost:6379", ""))
//	defer client.Close()
//
//	view, _ := client.Search(ctx, "residential", "type=apartment&budget=2-3-cr")
//	next, _ := client.Transition("residential", view.Query, "status", "ready-to-move")
//
// Static catalogs need no database:
//
//	client, _ := propdex.New(ctx, propdex.WithListings(listings))
package propdex
