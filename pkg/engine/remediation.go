package engine

import (
	"regexp"
	"strings"
)

// Catalog is the static mapping from vulnerability category to
// remediation guidance. Entries are held in a fixed order because the
// lookup is first-match: broad single-word categories sit behind the
// multi-word ones so "sql injection" wins over a bare "sql" hit.
type Catalog struct {
	entries []catalogEntry
}

type catalogEntry struct {
	key       string
	firstWord *regexp.Regexp // word-boundary pattern on the key's first word
	template  Recommendation
}

// Lookup finds the remediation template for a vulnerability. Both
// arguments are matched lower-cased. Pass 1 tries each category key as
// a substring of either the vulnerability name or the matcher name;
// pass 2 falls back to a word-boundary match on each key's first word,
// which lets single-word categories like "cve" catch identifiers such
// as "CVE-2023-1234". If nothing matches, the generic template is
// returned.
func (c *Catalog) Lookup(vulnName, matcherName string) Recommendation {
	name := strings.ToLower(vulnName)
	matcher := strings.ToLower(matcherName)

	for _, entry := range c.entries {
		if strings.Contains(name, entry.key) || strings.Contains(matcher, entry.key) {
			return entry.template
		}
	}

	for _, entry := range c.entries {
		if entry.firstWord.MatchString(name) || entry.firstWord.MatchString(matcher) {
			return entry.template
		}
	}

	return genericTemplate
}

// Keys returns the category keys in lookup order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.entries))
	for _, entry := range c.entries {
		keys = append(keys, entry.key)
	}
	return keys
}

func (c *Catalog) add(key string, template Recommendation) {
	first := strings.Fields(key)[0]
	c.entries = append(c.entries, catalogEntry{
		key:       key,
		firstWord: regexp.MustCompile(`\b` + regexp.QuoteMeta(first) + `\b`),
		template:  template,
	})
}

var genericTemplate = Recommendation{
	Summary: "Review and fix this vulnerability based on security best practices",
	Steps: []string{
		"Identify the root cause of the vulnerability",
		"Research OWASP guidelines for this type of issue",
		"Apply security patches or updates if available",
		"Implement appropriate input validation and output encoding",
		"Consider adding additional security controls",
	},
	CodeExample: `
# General security best practices:
1. Apply input validation
2. Use parameterized queries
3. Implement output encoding
4. Follow the principle of least privilege
5. Keep all software updated
`,
	References: []string{
		"OWASP Top 10: https://owasp.org/www-project-top-ten/",
		"SANS CWE Top 25: https://www.sans.org/top25-software-errors/",
	},
}

// DefaultCatalog builds the built-in remediation catalog.
func DefaultCatalog() *Catalog {
	c := &Catalog{}

	c.add("sql injection", Recommendation{
		Summary: "Protect against SQL injection attacks by using parameterized queries and input validation",
		Steps: []string{
			"Replace dynamic SQL queries with parameterized queries or prepared statements",
			"Implement proper input validation and sanitization for all user inputs",
			"Apply the principle of least privilege to database accounts",
			"Use an ORM (Object-Relational Mapping) library when possible",
			"Implement a Web Application Firewall (WAF) as an additional layer of protection",
		},
		CodeExample: `
# Example of parameterized query in Python with SQLite:
import sqlite3
conn = sqlite3.connect('database.db')
cursor = conn.cursor()

# UNSAFE:
# username = request.args.get('username')
# cursor.execute(f"SELECT * FROM users WHERE username = '{username}'")

# SAFE:
username = request.args.get('username')
cursor.execute("SELECT * FROM users WHERE username = ?", (username,))
`,
		References: []string{
			"OWASP SQL Injection Prevention Cheat Sheet: https://cheatsheetseries.owasp.org/cheatsheets/SQL_Injection_Prevention_Cheat_Sheet.html",
			"PortSwigger SQL Injection Guide: https://portswigger.net/web-security/sql-injection",
		},
	})

	c.add("xss", Recommendation{
		Summary: "Prevent Cross-Site Scripting (XSS) by implementing proper output encoding and CSP headers",
		Steps: []string{
			"Implement context-appropriate output encoding for all user-controlled data",
			"Use Content-Security-Policy (CSP) headers to restrict script execution",
			"Sanitize all user inputs before rendering them in HTML contexts",
			"Use modern frameworks that automatically escape output",
			"Implement X-XSS-Protection header as an additional defense",
		},
		CodeExample: `
# Example of CSP header implementation in Node.js:
app.use(helmet.contentSecurityPolicy({
  directives: {
    defaultSrc: ["'self'"],
    scriptSrc: ["'self'", "'nonce-{RANDOM_NONCE}'"],
    styleSrc: ["'self'", "'unsafe-inline'"],
    imgSrc: ["'self'", "data:"],
    connectSrc: ["'self'"],
    fontSrc: ["'self'"],
    objectSrc: ["'none'"],
    mediaSrc: ["'self'"],
    frameSrc: ["'none'"],
  }
})
`,
		References: []string{
			"OWASP XSS Prevention Cheat Sheet: https://cheatsheetseries.owasp.org/cheatsheets/Cross_Site_Scripting_Prevention_Cheat_Sheet.html",
			"Content Security Policy (CSP) Quick Reference: https://content-security-policy.com/",
		},
	})

	c.add("open redirect", Recommendation{
		Summary: "Prevent open redirect vulnerabilities by validating destination URLs against a whitelist",
		Steps: []string{
			"Implement a whitelist of allowed redirect destinations",
			"Validate all redirect parameters against this whitelist",
			"Use relative path redirects when possible",
			"For external redirects, use an intermediate page that requires user confirmation",
			"Consider implementing URL signing for sensitive redirects",
		},
		CodeExample: `
# Example of safe redirect implementation in Python:
from urllib.parse import urlparse
import re

def is_safe_redirect_url(url, allowed_hosts):
    parsed_url = urlparse(url)
    return (not parsed_url.netloc) or (parsed_url.netloc in allowed_hosts)

def safe_redirect(request):
    redirect_url = request.args.get('next', '/')
    allowed_hosts = ['example.com', 'subdomain.example.com']

    if is_safe_redirect_url(redirect_url, allowed_hosts):
        return redirect(redirect_url)
    else:
        return redirect('/')
`,
		References: []string{
			"OWASP Unvalidated Redirects and Forwards Cheat Sheet: https://cheatsheetseries.owasp.org/cheatsheets/Unvalidated_Redirects_and_Forwards_Cheat_Sheet.html",
		},
	})

	c.add("csrf", Recommendation{
		Summary: "Protect against Cross-Site Request Forgery (CSRF) with anti-CSRF tokens and proper validation",
		Steps: []string{
			"Implement anti-CSRF tokens for all state-changing operations",
			"Ensure tokens are unique per user session and per request",
			"Add the 'SameSite=Strict' attribute to cookies",
			"Use the 'X-CSRF-TOKEN' header for AJAX requests",
			"Consider implementing custom request headers for sensitive operations",
		},
		CodeExample: `
# Example of CSRF protection in Flask:
from flask_wtf.csrf import CSRFProtect

app = Flask(__name__)
app.config['SECRET_KEY'] = 'your-secret-key'
csrf = CSRFProtect(app)

@app.route('/form', methods=['POST'])
def process_form():
    # CSRF token is automatically checked
    # Process form data
    return 'Form processed'
`,
		References: []string{
			"OWASP CSRF Prevention Cheat Sheet: https://cheatsheetseries.owasp.org/cheatsheets/Cross-Site_Request_Forgery_Prevention_Cheat_Sheet.html",
			"SameSite Cookie Attribute: https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/Set-Cookie/SameSite",
		},
	})

	c.add("ssrf", Recommendation{
		Summary: "Protect against Server-Side Request Forgery (SSRF) by validating and restricting URLs",
		Steps: []string{
			"Implement a whitelist of allowed destinations",
			"Validate and sanitize all user-provided URLs",
			"Use a URL parsing library to canonicalize URLs before validation",
			"Block requests to internal networks (127.0.0.0/8, 169.254.0.0/16, etc.)",
			"Use network-level protections like firewalls to restrict server connections",
		},
		CodeExample: `
# Example of SSRF protection in Python:
import ipaddress
from urllib.parse import urlparse

def is_internal_ip(hostname):
    try:
        ip = socket.gethostbyname(hostname)
        ip_addr = ipaddress.ip_address(ip)
        return (
            ip_addr.is_private or
            ip_addr.is_loopback or
            ip_addr.is_link_local
        )
    except:
        return False

def safe_request(url):
    parsed_url = urlparse(url)
    if is_internal_ip(parsed_url.netloc):
        raise ValueError("URL points to internal network")

    allowed_hosts = ['api.example.com', 'public-api.com']
    if parsed_url.netloc not in allowed_hosts:
        raise ValueError("URL hostname not in whitelist")

    # Make the request
    response = requests.get(url)
    return response
`,
		References: []string{
			"OWASP SSRF Prevention Cheat Sheet: https://cheatsheetseries.owasp.org/cheatsheets/Server_Side_Request_Forgery_Prevention_Cheat_Sheet.html",
			"PortSwigger SSRF Guide: https://portswigger.net/web-security/ssrf",
		},
	})

	c.add("lfi", Recommendation{
		Summary: "Protect against Local File Inclusion (LFI) by restricting file access and validating paths",
		Steps: []string{
			"Implement strict input validation for file paths",
			"Use a whitelist of allowed files or directories",
			"Avoid using user input directly in file operations",
			"Implement proper file access controls",
			"Consider using a file abstraction layer instead of direct file system access",
		},
		CodeExample: `
# Example of safe file inclusion in PHP:
function safeInclude($file) {
    // Define the base directory for includes
    $baseDir = '/var/www/includes/';

    // Remove any path traversal attempts
    $file = basename($file);

    // Whitelist of allowed files
    $allowedFiles = ['header.php', 'footer.php', 'menu.php'];

    if (in_array($file, $allowedFiles) && file_exists($baseDir . $file)) {
        include($baseDir . $file);
        return true;
    }
    return false;
}

// Usage
$file = $_GET['include'];
if (!safeInclude($file)) {
    // Log the attempt and show error
    error_log("Potential LFI attempt: " . $file);
    include('error.php');
}
`,
		References: []string{
			"OWASP File Inclusion Guide: https://owasp.org/www-project-web-security-testing-guide/latest/4-Web_Application_Security_Testing/07-Input_Validation_Testing/11.1-Testing_for_Local_File_Inclusion",
		},
	})

	c.add("rfi", Recommendation{
		Summary: "Protect against Remote File Inclusion (RFI) by disabling remote includes and validating sources",
		Steps: []string{
			"Disable remote file includes if not needed (allow_url_include=Off in PHP)",
			"Implement a whitelist of allowed external resources",
			"Validate all URLs against the whitelist",
			"Use content verification for included files",
			"Consider alternatives to dynamic file inclusion",
		},
		CodeExample: `
# PHP configuration changes in php.ini:
allow_url_fopen = Off
allow_url_include = Off

# Example of safer dynamic inclusion in PHP:
function safeIncludeRemote($url) {
    // Whitelist of allowed domains
    $allowedDomains = ['trusted-cdn.com', 'company-repo.com'];

    // Parse the URL
    $parsed = parse_url($url);

    // Check if the domain is in the whitelist
    if (isset($parsed['host']) && in_array($parsed['host'], $allowedDomains)) {
        // Use file_get_contents with stream context to enforce HTTPS
        $context = stream_context_create([
            'ssl' => [
                'verify_peer' => true,
                'verify_peer_name' => true,
            ],
        ]);

        $content = file_get_contents($url, false, $context);

        // Safety check on content
        if (strpos($content, '<?php') === false) {
            // Process the content
            return $content;
        }
    }

    return false;
}
`,
		References: []string{
			"OWASP Remote File Inclusion Guide: https://owasp.org/www-project-web-security-testing-guide/latest/4-Web_Application_Security_Testing/07-Input_Validation_Testing/11.2-Testing_for_Remote_File_Inclusion",
		},
	})

	c.add("cve", Recommendation{
		Summary: "Address known Common Vulnerabilities and Exposures (CVEs) by applying patches and updates",
		Steps: []string{
			"Identify the specific CVE affecting your software",
			"Update the affected software to the latest patched version",
			"If patches are not available, implement temporary mitigations as recommended by the vendor",
			"Set up a vulnerability management process to track and prioritize patching",
			"Consider using a Web Application Firewall (WAF) to block exploitation attempts",
		},
		CodeExample: "\n# Example of security patching process:\n" +
			"1. Set up automated vulnerability scanning:\n" +
			"   - Use tools like OWASP Dependency Check, Snyk, or GitHub Dependency Graph\n" +
			"   - Integrate scanning into CI/CD pipeline\n\n" +
			"2. Implement a patch management system:\n" +
			"   ```bash\n" +
			"   # Example update script for Linux server\n" +
			"   #!/bin/bash\n\n" +
			"   # Update package lists\n" +
			"   apt-get update\n\n" +
			"   # Apply security updates\n" +
			"   apt-get upgrade -y\n\n" +
			"   # Log the update\n" +
			"   echo \"Security update applied on $(date)\" >> /var/log/security-updates.log\n" +
			"   ```\n",
		References: []string{
			"National Vulnerability Database: https://nvd.nist.gov/",
			"OWASP Dependency Check: https://owasp.org/www-project-dependency-check/",
		},
	})

	c.add("outdated", Recommendation{
		Summary: "Fix outdated software vulnerabilities by updating components and implementing security patches",
		Steps: []string{
			"Inventory all software components and dependencies",
			"Update to the latest stable and secure versions",
			"Set up automated dependency checking",
			"Implement a regular update schedule and policy",
			"Consider containerization to isolate components and simplify updates",
		},
		CodeExample: `
# Example of automated dependency updates in Node.js:
# package.json
{
  "name": "your-app",
  "scripts": {
    "audit": "npm audit fix",
    "update-deps": "npm update",
    "security-check": "snyk test"
  },
  "devDependencies": {
    "snyk": "^1.500.0"
  }
}

# GitHub Actions Workflow for automated updates
name: Security Updates
on:
  schedule:
    - cron: '0 0 * * 0'  # Weekly on Sundays
jobs:
  update-dependencies:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v2
      - name: Update dependencies
        run: npm update
      - name: Test changes
        run: npm test
      - name: Create Pull Request
        uses: peter-evans/create-pull-request@v3
        with:
          title: 'Dependency Updates'
          branch: 'automated-updates'
`,
		References: []string{
			"OWASP Top 10 - A9:2017 Using Components with Known Vulnerabilities: https://owasp.org/www-project-top-ten/2017/A9_2017-Using_Components_with_Known_Vulnerabilities",
			"Snyk - Dependency Vulnerability Scanner: https://snyk.io/",
		},
	})

	c.add("missing header", Recommendation{
		Summary: "Implement security headers to improve web application defense against common attacks",
		Steps: []string{
			"Implement Content-Security-Policy (CSP) header",
			"Add X-XSS-Protection header",
			"Set X-Content-Type-Options: nosniff header",
			"Configure Strict-Transport-Security (HSTS) header",
			"Add X-Frame-Options header to prevent clickjacking",
		},
		CodeExample: `
# Example security headers in Nginx:
server {
    listen 443 ssl;
    server_name example.com;

    # Security headers
    add_header Content-Security-Policy "default-src 'self'; script-src 'self' 'unsafe-inline'; style-src 'self' 'unsafe-inline';" always;
    add_header X-XSS-Protection "1; mode=block" always;
    add_header X-Content-Type-Options "nosniff" always;
    add_header Strict-Transport-Security "max-age=31536000; includeSubDomains; preload" always;
    add_header X-Frame-Options "SAMEORIGIN" always;
    add_header Referrer-Policy "strict-origin-when-cross-origin" always;

    # Other server configuration...
}

# Example security headers in Express.js:
const helmet = require('helmet');
app.use(helmet());
`,
		References: []string{
			"OWASP Secure Headers Project: https://owasp.org/www-project-secure-headers/",
			"Mozilla Observatory: https://observatory.mozilla.org/",
		},
	})

	c.add("information disclosure", Recommendation{
		Summary: "Prevent sensitive information disclosure by controlling error messages and removing debugging info",
		Steps: []string{
			"Configure custom error pages to avoid revealing system information",
			"Remove version information from HTTP headers",
			"Disable directory listings on web servers",
			"Implement proper exception handling to avoid stack traces in responses",
			"Remove comments containing sensitive information from client-side code",
		},
		CodeExample: `
# Example of custom error handling in Express.js:
app.use((err, req, res, next) => {
  // Log the error internally
  console.error(err);

  // Return a generic error message to the client
  res.status(500).json({
    status: 'error',
    message: 'An internal server error occurred'
  });
});

# Example of properly redacting sensitive information in logs:
function logSanitizer(logObject) {
  const sensitiveFields = ['password', 'token', 'ssn', 'creditCard', 'secret'];

  return Object.keys(logObject).reduce((acc, key) => {
    if (sensitiveFields.includes(key.toLowerCase())) {
      acc[key] = '[REDACTED]';
    } else {
      acc[key] = logObject[key];
    }
    return acc;
  }, {});
}
`,
		References: []string{
			"OWASP Information Leakage Guide: https://owasp.org/www-project-web-security-testing-guide/latest/4-Web_Application_Security_Testing/01-Information_Gathering/07-Map_Application_Architecture",
		},
	})

	c.add("directory listing", Recommendation{
		Summary: "Disable directory listing to prevent unauthorized browsing of server directories",
		Steps: []string{
			"Disable directory listing in web server configuration",
			"Create index files in all directories that need to be accessed",
			"Configure a custom 403 Forbidden page",
			"Use access controls to restrict directory access",
			"Regularly audit accessible directories",
		},
		CodeExample: `
# Apache configuration (.htaccess):
Options -Indexes
ErrorDocument 403 /error/forbidden.html

# Nginx configuration:
server {
    # ...

    # Disable directory listing
    autoindex off;

    # Custom error page
    error_page 403 /error/forbidden.html;

    # ...
}
`,
		References: []string{
			"OWASP Testing for Directory Traversal: https://owasp.org/www-project-web-security-testing-guide/latest/4-Web_Application_Security_Testing/05-Authorization_Testing/01-Testing_Directory_Traversal_File_Include",
		},
	})

	c.add("default credentials", Recommendation{
		Summary: "Eliminate default credential vulnerabilities by changing passwords and implementing proper authentication",
		Steps: []string{
			"Change all default credentials on all systems and components",
			"Implement a strong password policy for all accounts",
			"Set up multi-factor authentication (MFA) where possible",
			"Audit system accounts regularly",
			"Implement password rotation for service accounts",
		},
		CodeExample: `
# Example of strong password policy implementation in Node.js:
const passwordValidator = require('password-validator');

// Create a password schema
const passwordSchema = new passwordValidator();
passwordSchema
  .is().min(12)                                   // Minimum length 12
  .is().max(100)                                  // Maximum length 100
  .has().uppercase()                              // Must have uppercase letters
  .has().lowercase()                              // Must have lowercase letters
  .has().digits(2)                                // Must have at least 2 digits
  .has().not().spaces()                           // Should not have spaces
  .has().symbols(1)                               // Must have at least 1 symbol
  .is().not().oneOf(['Password123!', 'Admin123!']); // Blacklist common passwords

// Validate a password
function validatePassword(password) {
  return passwordSchema.validate(password, { list: true });
}
`,
		References: []string{
			"OWASP Authentication Best Practices: https://cheatsheetseries.owasp.org/cheatsheets/Authentication_Cheat_Sheet.html",
			"NIST Password Guidelines: https://pages.nist.gov/800-63-3/sp800-63b.html",
		},
	})

	c.add("sensitive file", Recommendation{
		Summary: "Protect sensitive files by removing them from publicly accessible locations and implementing access controls",
		Steps: []string{
			"Remove sensitive files from web-accessible directories",
			"Move configuration files outside the web root",
			"Use environment variables for sensitive configuration",
			"Implement proper file permissions",
			"Use .gitignore to prevent committing sensitive files",
		},
		CodeExample: `
# Example .gitignore file:
# Ignore sensitive files
.env
.env.*
config/secrets.yml
credentials.json
private_key.pem
*.key
*.p12
*.pfx
*.password

# Example of using environment variables instead of config files:
# Instead of:
# database.json
{
  "host": "db.example.com",
  "username": "admin",
  "password": "super-secret-password"
}

# Use environment variables:
const dbConfig = {
  host: process.env.DB_HOST,
  username: process.env.DB_USER,
  password: process.env.DB_PASSWORD
};
`,
		References: []string{
			"OWASP Sensitive Data Exposure: https://owasp.org/www-project-top-ten/2017/A3_2017-Sensitive_Data_Exposure",
			"The Twelve-Factor App - Config: https://12factor.net/config",
		},
	})

	c.add("ssl tls", Recommendation{
		Summary: "Fix SSL/TLS vulnerabilities by configuring proper protocols, cipher suites, and certificates",
		Steps: []string{
			"Disable outdated protocols (SSL 2.0, SSL 3.0, TLS 1.0, TLS 1.1)",
			"Enable only strong cipher suites",
			"Configure proper certificate validation",
			"Implement HTTP Strict Transport Security (HSTS)",
			"Use secure flag for cookies",
		},
		CodeExample: `
# Nginx secure TLS configuration:
server {
    listen 443 ssl;
    server_name example.com;

    # TLS configuration
    ssl_protocols TLSv1.2 TLSv1.3;
    ssl_prefer_server_ciphers on;
    ssl_ciphers 'ECDHE-ECDSA-AES256-GCM-SHA384:ECDHE-RSA-AES256-GCM-SHA384:ECDHE-ECDSA-CHACHA20-POLY1305:ECDHE-RSA-CHACHA20-POLY1305:ECDHE-ECDSA-AES128-GCM-SHA256:ECDHE-RSA-AES128-GCM-SHA256';
    ssl_session_timeout 1d;
    ssl_session_cache shared:SSL:50m;
    ssl_session_tickets off;
    ssl_certificate /path/to/fullchain.pem;
    ssl_certificate_key /path/to/privkey.pem;

    # HSTS
    add_header Strict-Transport-Security "max-age=63072000; includeSubDomains; preload" always;

    # ...
}
`,
		References: []string{
			"Mozilla SSL Configuration Generator: https://ssl-config.mozilla.org/",
			"OWASP Transport Layer Protection Cheat Sheet: https://cheatsheetseries.owasp.org/cheatsheets/Transport_Layer_Protection_Cheat_Sheet.html",
		},
	})

	c.add("cors", Recommendation{
		Summary: "Configure proper Cross-Origin Resource Sharing (CORS) policies to prevent unauthorized access",
		Steps: []string{
			"Specify the exact origins that should be allowed access",
			"Limit the HTTP methods allowed for cross-origin requests",
			"Restrict which HTTP headers can be used",
			"Control whether credentials can be included in cross-origin requests",
			"Set appropriate caching directives for preflight responses",
		},
		CodeExample: `
# Example of secure CORS configuration in Express.js:
const cors = require('cors');

// Basic CORS configuration
app.use(cors({
  origin: ['https://example.com', 'https://www.example.com'],
  methods: ['GET', 'POST'],
  allowedHeaders: ['Content-Type', 'Authorization'],
  credentials: true,
  maxAge: 600 // Cache preflight requests for 10 minutes
}));

# Example of CORS configuration in Nginx:
location /api/ {
  if ($request_method = 'OPTIONS') {
    add_header 'Access-Control-Allow-Origin' 'https://example.com';
    add_header 'Access-Control-Allow-Methods' 'GET, POST, OPTIONS';
    add_header 'Access-Control-Allow-Headers' 'DNT,User-Agent,X-Requested-With,If-Modified-Since,Cache-Control,Content-Type,Range,Authorization';
    add_header 'Access-Control-Max-Age' '600';
    add_header 'Content-Type' 'text/plain; charset=utf-8';
    add_header 'Content-Length' '0';
    return 204;
  }

  add_header 'Access-Control-Allow-Origin' 'https://example.com';
  add_header 'Access-Control-Allow-Methods' 'GET, POST, OPTIONS';
  add_header 'Access-Control-Allow-Headers' 'DNT,User-Agent,X-Requested-With,If-Modified-Since,Cache-Control,Content-Type,Range,Authorization';
  add_header 'Access-Control-Expose-Headers' 'Content-Length,Content-Range';

  # Pass to backend
  proxy_pass http://backend;
}
`,
		References: []string{
			"OWASP CORS Guide: https://cheatsheetseries.owasp.org/cheatsheets/Cross-Origin_Resource_Sharing_Cheat_Sheet.html",
			"MDN CORS: https://developer.mozilla.org/en-US/docs/Web/HTTP/CORS",
		},
	})

	return c
}
