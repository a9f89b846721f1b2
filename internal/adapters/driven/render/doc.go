// Package render draws difference previews for game creators.
//
// A preview is the original image with the dilated mask tinted red, each
// difference outlined and numbered, and every seed point marked.
package render
