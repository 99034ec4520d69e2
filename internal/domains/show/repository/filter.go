package repository

import (
	"marquee/internal/domains/show/model"
	gDto "marquee/shared/dto"
	"time"
)

// FilterBySlot matches the single show identified by venue, artist and start time.
func FilterBySlot(venueID, artistID int, startTime time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldVenueID, Value: venueID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldArtistID, Value: artistID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldStartTime, Value: startTime.UTC(), Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

// FilterByOwners matches every show of the given venues or artists, where field is
// venue_id or artist_id.
func FilterByOwners(field string, ids []int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: field, Value: ids, Operator: gDto.FilterOperatorIn, Table: model.TableName},
		},
	}
}
