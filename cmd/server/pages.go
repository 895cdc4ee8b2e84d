package main

import "html/template"

// pages holds every HTML page the server renders. The markup is deliberately
// plain: this is a navigation aid around the API, not a frontend.
var pages = template.Must(template.New("").Parse(`
{{define "index"}}<html>
<head><title>Movie Server</title></head>
<body>
	<h1>Movie Collection Server</h1>
	<p><strong>Running on port 8165</strong></p>

	<h2>Study and Top 10 movies</h2>
	<ul>
		<li><a href="/study">/study - Study page</a></li>
		<li><a href="/movietop/inception">/movietop/inception - Movie lookup</a></li>
	</ul>

	<h2>Adding movies</h2>
	<ul>
		<li><a href="/movies/add-form">/movies/add-form - Add movie form</a></li>
	</ul>

	<h2>Cookie authentication</h2>
	<ul>
		<li><a href="/login-cookie-form">/login-cookie-form - Login (Cookie)</a></li>
		<li><a href="/user-cookie">/user-cookie - Profile (Cookie)</a></li>
	</ul>

	<h2>JWT authentication</h2>
	<ul>
		<li><a href="/login-jwt-form">/login-jwt-form - Login (JWT)</a></li>
		<li><a href="/user-jwt">/user-jwt - Profile (JWT)</a></li>
	</ul>
</body>
</html>{{end}}

{{define "study"}}<html>
<head><title>University</title></head>
<body>
	<h1>Bryansk State Engineering Technological University</h1>
	<p><strong>Faculty:</strong> Information Technologies</p>
	<p><strong>Specialty:</strong> Computer Science</p>
	<p><strong>Year:</strong> 2025</p>
	<p><a href="/">&larr; Back home</a></p>
</body>
</html>{{end}}

{{define "add_form"}}<html>
<head><title>Add Movie</title></head>
<body>
	<h1>Add New Movie</h1>
	<form action="/movies/add" method="post" enctype="multipart/form-data">
		<p>Name: <input type="text" name="name" required></p>
		<p>Genre: <input type="text" name="genre" required></p>
		<p>Rating: <input type="number" name="rating" step="0.1" min="0" max="10" required></p>
		<p>Comment: <textarea name="comment" required></textarea></p>
		<p>Image: <input type="file" name="image" accept="image/*"></p>
		<button type="submit">Add Movie</button>
	</form>
	<p><a href="/">&larr; Back home</a></p>
</body>
</html>{{end}}

{{define "movie_added"}}<html>
<body>
	<h1>Movie Added Successfully!</h1>
	<p>ID: {{.ID}}</p>
	<p><a href="/movies/{{.ID}}">View Movie</a></p>
	<p><a href="/movies/add-form">Add Another Movie</a></p>
	<p><a href="/">&larr; Back home</a></p>
</body>
</html>{{end}}

{{define "movie"}}<html>
<head><title>{{.Movie.Name}}</title></head>
<body>
	<h1>{{.Movie.Name}}</h1>
	{{if .ImageURL}}<img src="{{.ImageURL}}" width="300">{{else}}No image{{end}}
	<p><strong>Genre:</strong> {{.Movie.Genre}}</p>
	<p><strong>Rating:</strong> {{.Movie.Rating}}/10</p>
	<p><strong>Comment:</strong> {{.Movie.Comment}}</p>
	<p><strong>ID:</strong> {{.Movie.ID}}</p>
	<p><a href="/movies/add-form">Add another movie</a></p>
	<p><a href="/">&larr; Back home</a></p>
</body>
</html>{{end}}

{{define "movie_not_found"}}<html>
<body>
	<h1>Movie not found</h1>
	<p><a href="/">&larr; Back home</a></p>
</body>
</html>{{end}}

{{define "cookie_login_form"}}<html>
<head><title>Cookie Login</title></head>
<body>
	<h1>Cookie Login</h1>
	<form action="/login-cookie" method="post">
		<p>Username: <input type="text" name="username" required></p>
		<p>Password: <input type="password" name="password" required></p>
		<button type="submit">Login</button>
	</form>
	<p>Test users: admin/admin123 or user/user123</p>
	<p><a href="/">&larr; Back home</a></p>
</body>
</html>{{end}}

{{define "cookie_login_ok"}}<html>
<body>
	<h1>Login Successful! (Cookie)</h1>
	<p>Welcome, {{.Username}}!</p>
	<p><strong>Your Session Token:</strong> {{.Token}}</p>
	<p><a href="/user-cookie?session_token={{.Token}}">Go to Profile</a></p>
	<p><a href="/">&larr; Back home</a></p>
</body>
</html>{{end}}

{{define "cookie_login_fail"}}<html>
<body>
	<h1>Login Failed</h1>
	<p>Invalid username or password</p>
	<p><a href="/login-cookie-form">Try again</a></p>
	<p><a href="/">&larr; Back home</a></p>
</body>
</html>{{end}}

{{define "jwt_login_form"}}<html>
<head><title>JWT Login</title></head>
<body>
	<h1>JWT Login</h1>
	<form action="/login-jwt" method="post">
		<p>Username: <input type="text" name="username" required></p>
		<p>Password: <input type="password" name="password" required></p>
		<button type="submit">Login</button>
	</form>
	<p>Test users: admin/admin123 or user/user123</p>
	<p><a href="/">&larr; Back home</a></p>
</body>
</html>{{end}}

{{define "jwt_login_ok"}}<html>
<body>
	<h1>JWT Login Successful!</h1>
	<p>Welcome, {{.Username}}!</p>
	<p><strong>Your JWT Token:</strong></p>
	<textarea readonly style="width: 100%; height: 100px; font-family: monospace;">{{.Token}}</textarea>
	<p>Use this token in Authorization header: <code>Bearer {{.Token}}</code></p>
	<p><a href="/user-jwt?token={{.Token}}">Go to Profile with token</a></p>
	<p><a href="/">&larr; Back home</a></p>
</body>
</html>{{end}}
`))
