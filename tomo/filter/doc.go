// Package filter provides the FBP filter-kind catalog, the apodization
// windows of the analytic kinds, and the single-owner coefficient buffer
// used by the custom-data kinds.
//
// Analytic kinds (ram-lak, shepp-logan, hann, ...) are fully described by a
// closed-form window; custom-data kinds (projection, sinogram, rprojection,
// rsinogram) carry caller-supplied coefficients sized by their indexing
// domain: per detector channel per angle, or per angle only.
package filter
