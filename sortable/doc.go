// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface (Equals plus LessThan), and the bridge from Sortable
// to compare.Comparator so such types can order sorted sequences directly.
//
// # Usage
//
//	seq := sortedseq.Make(sortable.Comparator[sortable.Int](), 5, 3, 7)
//	// seq.ToSlice() == []sortable.Int{3, 5, 7}
//
// # Custom types
//
//	type Version struct{ Major, Minor int }
//
//	func (v Version) Equals(o Version) bool { return v == o }
//
//	func (v Version) LessThan(o Version) bool {
//	    if v.Major != o.Major {
//	        return v.Major < o.Major
//	    }
//	    return v.Minor < o.Minor
//	}
//
// Equals and LessThan must agree: exactly one of a.LessThan(b), b.LessThan(a)
// and a.Equals(b) holds for any pair.
package sortable
