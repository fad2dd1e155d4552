// Package lu implements exact Doolittle LU factorization without pivoting.
//
// Given a square rational matrix A, Factorize returns L (unit lower
// triangular) and U (upper triangular) such that L·U == A exactly:
//
//	for i = 0..n-1:
//	    U[i][j] = A[i][j] - Σ_{k<i} L[i][k]·U[k][j]              j = i..n-1
//	    L[j][i] = (A[j][i] - Σ_{k<i} L[j][k]·U[k][i]) / U[i][i]  j = i+1..n-1
//
// Rows are never exchanged. A zero pivot U[i][i] with rows still to be
// eliminated below it fails with ErrDecomposition, even when the system would
// be solvable after a row interchange (e.g. [[0,1],[1,0]]). A zero final pivot
// U[n-1][n-1] is left in U; the substitution stage reports it.
//
// # Diagnostics
//
// WithTracer receives every computed entry in elimination order together with
// its symbolic formula ("u23 = a23 - l21u13") and running step count out of
// n². WriterTracer prints the classic two-line trace to an io.Writer.
//
// # Concurrency
//
// WithWorkers(n) evaluates the columns of each U row, then the rows of each L
// column, on up to n goroutines. Entries within a phase are write-disjoint and
// read only finished entries of earlier phases; a barrier separates the
// phases. Results and trace order are identical to the sequential run.
//
// Complexity: O(n³) rational operations, O(n²) memory.
package lu
