package repositories

import (
	"strconv"
	"strings"
)

// Cond accumulates WHERE fragments and their args. Fragments are ANDed;
// a free-text search contributes a single OR group as one fragment.
// Case-insensitive matching relies on the MySQL *_ci collation of the
// text columns, the same way the q filter in the legacy vehicle listing
// did.
type Cond struct {
	clauses []string
	args    []any
}

// And appends one fragment with its args.
func (c *Cond) And(clause string, args ...any) {
	clause = strings.TrimSpace(clause)
	if clause == "" {
		return
	}
	c.clauses = append(c.clauses, clause)
	c.args = append(c.args, args...)
}

// Merge appends every fragment of other.
func (c *Cond) Merge(other Cond) {
	c.clauses = append(c.clauses, other.clauses...)
	c.args = append(c.args, other.args...)
}

// Where renders " WHERE ..." (leading space) or "" when empty.
func (c Cond) Where() (string, []any) {
	if len(c.clauses) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(c.clauses, " AND "), c.args
}

// Empty reports whether no fragment was added.
func (c Cond) Empty() bool { return len(c.clauses) == 0 }

func likeArg(term string) string {
	return "%" + term + "%"
}

// orGroup joins alternatives into one parenthesized fragment.
func orGroup(alternatives ...string) string {
	return "(" + strings.Join(alternatives, " OR ") + ")"
}

// VehicleFilters are structured narrowing constraints for vehicle lists.
// Zero values mean "no constraint".
type VehicleFilters struct {
	Brand    string
	YearMin  int
	YearMax  int
	PriceMin int64
	PriceMax int64
}

// VehicleSearch builds the vehicle predicate: free text ORs over brand and
// model, plus exact price/year when the term parses as a number; filters
// AND with the term so search narrows within the filtered set.
func VehicleSearch(term string, f VehicleFilters) Cond {
	var c Cond
	term = strings.TrimSpace(term)
	if term != "" {
		alts := []string{"v.brand LIKE ?", "v.model LIKE ?"}
		args := []any{likeArg(term), likeArg(term)}
		if n, err := strconv.ParseInt(term, 10, 64); err == nil {
			alts = append(alts, "v.price = ?", "v.year = ?")
			args = append(args, n, n)
		}
		c.And(orGroup(alts...), args...)
	}
	if f.Brand != "" {
		c.And("v.brand LIKE ?", likeArg(f.Brand))
	}
	if f.YearMin > 0 {
		c.And("v.year >= ?", f.YearMin)
	}
	if f.YearMax > 0 {
		c.And("v.year <= ?", f.YearMax)
	}
	if f.PriceMin > 0 {
		c.And("v.price >= ?", f.PriceMin)
	}
	if f.PriceMax > 0 {
		c.And("v.price <= ?", f.PriceMax)
	}
	return c
}

// PartFilters narrow part lists. Zero values mean "no constraint".
type PartFilters struct {
	Brand    string
	PriceMin int64
	PriceMax int64
}

func PartSearch(term string, f PartFilters) Cond {
	var c Cond
	term = strings.TrimSpace(term)
	if term != "" {
		alts := []string{"p.name LIKE ?", "p.brand LIKE ?", "p.model LIKE ?"}
		args := []any{likeArg(term), likeArg(term), likeArg(term)}
		if n, err := strconv.ParseInt(term, 10, 64); err == nil {
			alts = append(alts, "p.price = ?")
			args = append(args, n)
		}
		c.And(orGroup(alts...), args...)
	}
	if f.Brand != "" {
		c.And("p.brand LIKE ?", likeArg(f.Brand))
	}
	if f.PriceMin > 0 {
		c.And("p.price >= ?", f.PriceMin)
	}
	if f.PriceMax > 0 {
		c.And("p.price <= ?", f.PriceMax)
	}
	return c
}

func GarageSearch(term string) Cond {
	var c Cond
	term = strings.TrimSpace(term)
	if term != "" {
		c.And(orGroup("g.name LIKE ?", "g.address LIKE ?", "g.phone LIKE ?"),
			likeArg(term), likeArg(term), likeArg(term))
	}
	return c
}

// OrderFilters narrow order lists (admin and seller views).
type OrderFilters struct {
	Status string
}

// PurchaseOrderSearch matches through the related rows: buyer name plus
// the vehicle's brand and model.
func PurchaseOrderSearch(term string, f OrderFilters) Cond {
	var c Cond
	term = strings.TrimSpace(term)
	if term != "" {
		c.And(orGroup("u.name LIKE ?", "v.brand LIKE ?", "v.model LIKE ?"),
			likeArg(term), likeArg(term), likeArg(term))
	}
	if f.Status != "" {
		c.And("o.status = ?", f.Status)
	}
	return c
}

// PartOrderSearch matches buyer name plus the part's name and brand.
func PartOrderSearch(term string, f OrderFilters) Cond {
	var c Cond
	term = strings.TrimSpace(term)
	if term != "" {
		c.And(orGroup("u.name LIKE ?", "p.name LIKE ?", "p.brand LIKE ?"),
			likeArg(term), likeArg(term), likeArg(term))
	}
	if f.Status != "" {
		c.And("o.status = ?", f.Status)
	}
	return c
}

// ReviewFilters narrow review lists.
type ReviewFilters struct {
	RatingMin int
}

func ReviewSearch(term string, f ReviewFilters) Cond {
	var c Cond
	term = strings.TrimSpace(term)
	if term != "" {
		c.And(orGroup("r.comment LIKE ?", "u.name LIKE ?"),
			likeArg(term), likeArg(term))
	}
	if f.RatingMin > 0 {
		c.And("r.rating >= ?", f.RatingMin)
	}
	return c
}
