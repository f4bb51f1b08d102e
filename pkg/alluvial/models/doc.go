// Package models defines the value types shared by the alluvial pipeline,
// its readers and its renderers.
package models
