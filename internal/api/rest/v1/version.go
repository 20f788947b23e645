package v1

// BasePath is the prefix of every entity route.
const BasePath = "/api"
