// Package report writes solved correlation functions as tab-separated tables
// and line plots, one column or line per independent site-type pair.
package report
