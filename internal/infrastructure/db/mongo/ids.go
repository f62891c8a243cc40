package mongo

import "go.mongodb.org/mongo-driver/bson/primitive"

// objectID parses a hex id. A malformed id is reported as notFound: callers
// cannot tell it apart from a well-formed id that matches nothing.
func objectID(id string, notFound error) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, notFound
	}
	return oid, nil
}
