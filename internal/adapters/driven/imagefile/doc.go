// Package imagefile loads and writes images on the local filesystem.
//
// Decoding supports PNG, JPEG and GIF from the standard library plus BMP,
// TIFF and WebP from golang.org/x/image. Every decoded image is converted
// to a zero-origin *image.RGBA, the only layout the engine accepts.
package imagefile
