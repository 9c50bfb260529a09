// SPDX-License-Identifier: MIT

// Package lvgeom is a pure-Go geometry processing core: matrix algebra,
// point-cloud normals, RANSAC primitive detection and spline curves.
//
// The work is organized under focused subpackages:
//
//	matrix/     - row-major Dense engine, Mat2/Mat3/Mat4 values, LU, Cholesky,
//	              Gauss-Jordan, symmetric eigen, rotation/scale/translation
//	pointcloud/ - points with named, typed per-point properties
//	knn/        - k-nearest-neighbour queries over a k-d tree
//	mst/        - minimum spanning forests (Kruskal, Prim) and tree walks
//	normals/    - PCA normal estimation and Hoppe reorientation
//	ransac/     - plane/sphere/cylinder/cone/torus detection
//	spline/     - 1-D cubic/linear splines and N-D curves
//
// A typical pipeline:
//
//	cloud := pointcloud.FromPoints(pts)
//	_ = normals.Estimate(cloud, 16, false)
//	_ = normals.Reorient(cloud, 16)
//	det, _ := ransac.NewDetector(ransac.Plane, ransac.Cylinder)
//	n, _ := det.Detect(cloud, ransac.WithMinSupport(500))
//
// after which every point carries "v:primitive_type" and "v:primitive_index".
//
// Logging goes through log/slog; each package exposes SetLogger.
package lvgeom
