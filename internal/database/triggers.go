package database

import "gorm.io/gorm"

// Overlap of active rentals is enforced here, in the database, not in
// application code: two concurrent rental creations for the same item are
// serialized by Postgres and the loser gets a raised exception, which the
// data access layer translates to a conflict.
const rentalOverlapFunction = `
CREATE OR REPLACE FUNCTION check_rental_item_overlap() RETURNS trigger AS $$
DECLARE
	r rentals%ROWTYPE;
BEGIN
	SELECT * INTO r FROM rentals WHERE id = NEW.rental_id;
	IF r.returned_at IS NOT NULL THEN
		RETURN NEW;
	END IF;
	-- Serialize writers on the item row. Without the lock two concurrent
	-- inserts both pass the EXISTS check against snapshots that exclude
	-- the other's uncommitted rental, and both commit.
	PERFORM 1 FROM items WHERE id = NEW.item_id FOR UPDATE;
	IF EXISTS (
		SELECT 1
		FROM rental_items ri
		JOIN rentals o ON o.id = ri.rental_id
		WHERE ri.item_id = NEW.item_id
		  AND ri.rental_id <> NEW.rental_id
		  AND o.organization_id = r.organization_id
		  AND o.returned_at IS NULL
		  AND o.starts_at < r.ends_at
		  AND o.ends_at > r.starts_at
	) THEN
		RAISE EXCEPTION 'item % has an overlapping active rental', NEW.item_id;
	END IF;
	RETURN NEW;
END;
$$ LANGUAGE plpgsql;
`

const rentalTimesOverlapFunction = `
CREATE OR REPLACE FUNCTION check_rental_times_overlap() RETURNS trigger AS $$
BEGIN
	IF NEW.returned_at IS NOT NULL THEN
		RETURN NEW;
	END IF;
	PERFORM 1 FROM items
	WHERE id IN (SELECT item_id FROM rental_items WHERE rental_id = NEW.id)
	FOR UPDATE;
	IF EXISTS (
		SELECT 1
		FROM rental_items ri
		JOIN rental_items other ON other.item_id = ri.item_id AND other.rental_id <> NEW.id
		JOIN rentals o ON o.id = other.rental_id
		WHERE ri.rental_id = NEW.id
		  AND o.organization_id = NEW.organization_id
		  AND o.returned_at IS NULL
		  AND o.starts_at < NEW.ends_at
		  AND o.ends_at > NEW.starts_at
	) THEN
		RAISE EXCEPTION 'rental % overlaps an active rental', NEW.id;
	END IF;
	RETURN NEW;
END;
$$ LANGUAGE plpgsql;
`

var rentalOverlapTriggers = []string{
	`DROP TRIGGER IF EXISTS trg_rental_items_overlap ON rental_items`,
	`CREATE TRIGGER trg_rental_items_overlap
		AFTER INSERT OR UPDATE ON rental_items
		FOR EACH ROW EXECUTE FUNCTION check_rental_item_overlap()`,
	`DROP TRIGGER IF EXISTS trg_rentals_overlap ON rentals`,
	`CREATE TRIGGER trg_rentals_overlap
		AFTER UPDATE OF starts_at, ends_at, returned_at ON rentals
		FOR EACH ROW EXECUTE FUNCTION check_rental_times_overlap()`,
}

func installRentalOverlapTrigger(db *gorm.DB) error {
	if err := db.Exec(rentalOverlapFunction).Error; err != nil {
		return err
	}
	if err := db.Exec(rentalTimesOverlapFunction).Error; err != nil {
		return err
	}
	for _, stmt := range rentalOverlapTriggers {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
