// SPDX-License-Identifier: MIT

// Package normals estimates and orients per-point normals of a point cloud.
//
// Estimate fits a plane to the k nearest neighbours of every point by
// principal component analysis: the eigenvector of the smallest eigenvalue
// of the neighbourhood covariance is the (unoriented) normal, and
// λmin/(λ0+λ1+λ2) is the surface-variation curvature estimate.
//
// Reorient gives those normals a consistent sign (Hoppe et al., "Surface
// reconstruction from unorganized points", SIGGRAPH 1992): a symmetric kNN
// graph weighted by 1-|nᵢ·nⱼ| is reduced to a minimum spanning forest, the
// highest point of each tree gets a normal facing +z, and every child is
// flipped to agree with its parent while walking outward.
//
// Results are written into the cloud's "v:normal" and "v:curvature" properties.
package normals
