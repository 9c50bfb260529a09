// SPDX-License-Identifier: MIT

// Package ransac detects geometric primitives (planes, spheres, cylinders,
// cones and tori) in oriented point clouds by efficient RANSAC (Schnabel,
// Wahl and Klein, "Efficient RANSAC for Point-Cloud Shape Detection", 2007).
//
// A Detector holds the set of primitive types to look for; an empty set
// detects nothing. Detect runs the randomized consensus search:
//
//   - minimal samples are drawn from octree cells around a random seed point,
//     so that samples are spatially local;
//   - every enabled type fits a candidate to the sample and scores it against
//     the remaining points: a point is an inlier when it lies within the
//     distance threshold and its normal deviates by at most the normal
//     threshold from the shape normal, and only the largest connected
//     component of the inliers (on a voxel grid of the bitmap resolution)
//     counts as support;
//   - the best candidate is accepted once the probability of having
//     overlooked a better one drops below the overlook probability; its
//     inliers are removed and the search continues;
//   - the search stops when a shape of MinSupport points would have been
//     found with probability 1-overlook, or after MaxTrials draws.
//
// Distance and bitmap thresholds are relative to the largest extent of the
// points' bounding box.
//
// Results are written into the cloud as "v:primitive_type" (int PrimType code)
// and "v:primitive_index" (int, -1 when unassigned) on every point. The
// integer codes of PrimType are part of that contract and must not change.
package ransac
