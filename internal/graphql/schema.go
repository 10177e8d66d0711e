package graphql

// Schema is the full SDL served on /graphql. The mutations resolve to
// the raw session token; the session itself travels in the response
// cookie.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		getCurrentUser: User
		getUser(id: ID!): User
	}

	type Mutation {
		signUp(name: NameInput!, nickname: String!, password: String!, email: String!, avatar: AvatarInput): String
		login(email: String!, password: String!): String
	}

	input NameInput {
		firstName: String!
		secondName: String
		lastName: String!
	}

	input AvatarInput {
		source: String
	}

	type User {
		id: ID!
		email: Email!
		nickname: String!
		name: Name!
		createdAt: String!
		type: String!
		avatar: Avatar!
	}

	type Email {
		current: String!
		isVerified: Boolean!
		oldEmails: [String!]!
	}

	type Name {
		firstName: String!
		secondName: String
		lastName: String!
	}

	type Avatar {
		source: String
		blockAvatar: BlockAvatar!
	}

	type BlockAvatar {
		color: String!
		bgColor: String!
		spotColor: String!
	}
`
