// Package builder generates deterministic synthetic point clouds for tests,
// examples and the CLI's demo mode.
//
// The package offers:
//
//   - Constructors:
//     – Circle(n):              n points on a circle (label "circle").
//     – Blobs(centers, perBlob): Gaussian blobs around each center
//     (labels "blob-0", "blob-1", …).
//     – Line(n, dim):           n evenly spaced points on the main diagonal
//     of [0,1]^dim (label "line").
//   - Options:
//     – WithSeed(seed):   reproducible noise.
//     – WithNoise(sigma): additive Gaussian noise per coordinate.
//     – WithRadius(r):    circle radius / blob spread.
//
// Guarantees:
//
//   - Determinism per (constructor arguments, options).
//   - Fast-fail on meaningless option parameters via panics in option
//     constructors; constructors themselves return errors, never panic.
//   - Every returned *pointcloud.Cloud passes Validate.
package builder
