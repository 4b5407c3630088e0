// Package jwt provides RS256 JSON Web Token signing and validation.
//
// The package implements the small subset of JWT this API needs: signing
// claims with an RSA private key, validating signatures and standard time
// claims with the public key, and generating key pairs for deployment.
//
// # Signing
//
//	service, err := jwt.NewService(jwt.Config{
//	    PrivateKeyPath: "./keys/private.pem",
//	    Issuer:         "hbnb.tomlena.tech",
//	    ExpirationMins: 60,
//	})
//
//	token, err := service.Sign(jwt.Claims{
//	    Subject: user.ID,
//	    UserID:  user.ID,
//	    Email:   user.Email,
//	    Admin:   user.IsAdmin,
//	})
//
// # Validation
//
//	claims, err := service.Validate(tokenString)
//	if err != nil {
//	    // invalid signature, expired, or malformed
//	}
//
// A service constructed with only PublicKeyPath can validate but not sign,
// which suits processes that never issue tokens.
package jwt
