// Package matrix is the matrix/vector engine of linalg.
//
// The matrix package provides:
//
//   - Matrix[E]: a dense row-major grid whose shape is fixed at construction,
//     with bounds-checked indexing that names the violated axis and range.
//   - Arithmetic with pure and in-place variants: Add/AddAssign, Sub,
//     Neg, Scale/ScaleSet, Mul/MulAssign, Transpose/TransposeSet.
//   - Determinant (closed forms to 3×3, Leibniz permutation sum beyond),
//     Cofactor, CofactorMatrix, Adjoint, Trace, Diag.
//   - LU (no pivoting, unit-diagonal U) and PLU (exhaustive row-order search),
//     with Solve and Inverse built on PLU substitution.
//   - Element-wise kernels (ElemMul, ElemDiv, ElemAdd, ElemSub, Abs, Log),
//     reductions (Sum, Min, Max, MinMax, rows by Norm), checked element
//     conversion (Dtype), Complex promotion (Conj, CAbs) and AllClose.
//   - Vector and ColVector aliases with Dot, CDot, Cross, NormOf, Slerp.
//   - Generators: Empty, Identity, Rotation and RotationX/Y/Z.
//
// Go has no const generics, so dimensions are runtime values. Operations
// that combine matrices check shapes and report ErrDimensionMismatch or
// ErrNonSquare; element types are still checked statically.
//
// Determinant and PLU enumerate permutations and run in factorial time.
// They are intended for small matrices (n below roughly 8–10).
//
// See the examples in this package for usage patterns.
package matrix
