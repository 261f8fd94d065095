// Package model provides the geometric primitives shared across the
// interpreter: points, bounding boxes, and the 3x3 transformation matrix
// used by the PDF imaging model.
//
// # Matrix
//
// PDF describes all coordinate spaces with affine transformation matrices.
// Matrix stores the full homogeneous 3x3 form so multiplication is a single
// uniform operation, and composition follows PDF post-multiplication:
//
//	ctm = local.Mul(ctm)    // cm operator
//
// The six meaningful components map onto the array as:
//
//	a=m[0][0] b=m[0][1] c=m[1][0] d=m[1][1] e=m[2][0] f=m[2][1]
//
// Matrix is a value type; copies are independent, which the interpreter
// relies on when handing matrices to sinks.
package model
